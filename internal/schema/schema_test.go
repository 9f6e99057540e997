package schema

import (
	"encoding/json"
	"testing"

	apperrors "github.com/feywood/tomekeeper/internal/platform/errors"
)

func errorCode(t *testing.T, err error) apperrors.Code {
	t.Helper()

	if err == nil {
		t.Fatal("expected a validation error")
	}
	domain := apperrors.FromError(err)
	if domain == nil {
		t.Fatalf("error %v is not a domain error", err)
	}
	return domain.Code
}

func TestValidateNewAcceptsCompletePayload(t *testing.T) {
	t.Parallel()

	err := Skills.ValidateNew(map[string]any{
		"name":        "Stealth",
		"attribute":   "Agility",
		"description": "Move unseen",
	})
	if err != nil {
		t.Fatalf("ValidateNew() = %v, want nil", err)
	}
}

func TestValidateNewAcceptsOmittedOptionalFields(t *testing.T) {
	t.Parallel()

	if err := Species.ValidateNew(map[string]any{"name": "Human"}); err != nil {
		t.Fatalf("ValidateNew() = %v, want nil", err)
	}
}

func TestValidateNewRejectsMissingRequiredField(t *testing.T) {
	t.Parallel()

	err := Skills.ValidateNew(map[string]any{"name": "Stealth"})
	if code := errorCode(t, err); code != apperrors.CodeSchemaMissingField {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaMissingField)
	}
	if apperrors.FromError(err).Metadata["field"] != "attribute" {
		t.Fatalf("field = %q, want attribute", apperrors.FromError(err).Metadata["field"])
	}
}

func TestValidateNewRejectsBlankRequiredText(t *testing.T) {
	t.Parallel()

	err := Species.ValidateNew(map[string]any{"name": "   "})
	if code := errorCode(t, err); code != apperrors.CodeSchemaMissingField {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaMissingField)
	}
}

func TestValidateNewRejectsUnknownField(t *testing.T) {
	t.Parallel()

	err := Species.ValidateNew(map[string]any{
		"name":      "Human",
		"alignment": "neutral",
	})
	if code := errorCode(t, err); code != apperrors.CodeSchemaUnknownField {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaUnknownField)
	}
}

func TestValidateNewTypeChecks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		schema  Schema
		payload map[string]any
		wantErr bool
	}{
		{
			name:    "text field holds number",
			schema:  Species,
			payload: map[string]any{"name": "Human", "description": 7},
			wantErr: true,
		},
		{
			name:    "int field holds fraction",
			schema:  Characters,
			payload: map[string]any{"name": "Mira", "species": "Human", "class": "Ranger", "level": 1.5},
			wantErr: true,
		},
		{
			name:    "int field holds integral float",
			schema:  Characters,
			payload: map[string]any{"name": "Mira", "species": "Human", "class": "Ranger", "level": float64(3)},
		},
		{
			name:    "int field holds json.Number",
			schema:  Characters,
			payload: map[string]any{"name": "Mira", "species": "Human", "class": "Ranger", "level": json.Number("3")},
		},
		{
			name:    "int field holds text",
			schema:  CharacterAttributes,
			payload: map[string]any{"value": "twelve"},
			wantErr: true,
		},
		{
			name:    "number field holds fraction",
			schema:  Items,
			payload: map[string]any{"name": "Rope", "weight": 2.5},
		},
		{
			name:    "number field holds int",
			schema:  Items,
			payload: map[string]any{"name": "Rope", "weight": 3},
		},
		{
			name:    "number field holds text",
			schema:  Items,
			payload: map[string]any{"name": "Rope", "weight": "heavy"},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.schema.ValidateNew(tc.payload)
			if tc.wantErr {
				if code := errorCode(t, err); code != apperrors.CodeSchemaInvalidType {
					t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaInvalidType)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateNew() = %v, want nil", err)
			}
		})
	}
}

func TestValidateUpdateRequiresFields(t *testing.T) {
	t.Parallel()

	err := Species.ValidateUpdate(map[string]any{})
	if code := errorCode(t, err); code != apperrors.CodeSchemaEmptyUpdate {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaEmptyUpdate)
	}
}

func TestValidateUpdateRejectsKeyField(t *testing.T) {
	t.Parallel()

	err := Species.ValidateUpdate(map[string]any{"name": "Elf"})
	if code := errorCode(t, err); code != apperrors.CodeSchemaUnknownField {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaUnknownField)
	}
}

func TestValidateUpdateAllowsRenamingSurrogateKeyedRecords(t *testing.T) {
	t.Parallel()

	if err := Items.ValidateUpdate(map[string]any{"name": "Silk Rope"}); err != nil {
		t.Fatalf("ValidateUpdate() = %v, want nil", err)
	}
	if err := Characters.ValidateUpdate(map[string]any{"name": "Mira the Swift"}); err != nil {
		t.Fatalf("ValidateUpdate() = %v, want nil", err)
	}
}

func TestValidateUpdateRejectsBlankingRequiredText(t *testing.T) {
	t.Parallel()

	err := Skills.ValidateUpdate(map[string]any{"attribute": ""})
	if code := errorCode(t, err); code != apperrors.CodeSchemaMissingField {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaMissingField)
	}
}

func TestValidateUpdateRejectsUnknownField(t *testing.T) {
	t.Parallel()

	err := Characters.ValidateUpdate(map[string]any{"hit_points": 20})
	if code := errorCode(t, err); code != apperrors.CodeSchemaUnknownField {
		t.Fatalf("code = %q, want %q", code, apperrors.CodeSchemaUnknownField)
	}
}

func TestNormalizeCoercesDeclaredNumerics(t *testing.T) {
	t.Parallel()

	fields := Characters.Normalize(map[string]any{
		"level":      float64(4),
		"experience": json.Number("1200"),
		"notes":      "stubborn",
	})

	if got, ok := fields["level"].(int64); !ok || got != 4 {
		t.Fatalf("level = %v (%T), want int64 4", fields["level"], fields["level"])
	}
	if got, ok := fields["experience"].(int64); !ok || got != 1200 {
		t.Fatalf("experience = %v (%T), want int64 1200", fields["experience"], fields["experience"])
	}
	if fields["notes"] != "stubborn" {
		t.Fatalf("notes = %v, want unchanged", fields["notes"])
	}
}

func TestNormalizeLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	in := map[string]any{"weight": float64(2)}
	out := Items.Normalize(in)

	if _, ok := in["weight"].(float64); !ok {
		t.Fatalf("input mutated: weight = %T", in["weight"])
	}
	if got, ok := out["weight"].(float64); !ok || got != 2 {
		t.Fatalf("weight = %v (%T), want float64 2", out["weight"], out["weight"])
	}
}

func TestExtractors(t *testing.T) {
	t.Parallel()

	fields := map[string]any{
		"name":   "Rope",
		"cost":   float64(25),
		"weight": json.Number("2.5"),
	}

	if got := Text(fields, "name"); got != "Rope" {
		t.Fatalf("Text(name) = %q, want Rope", got)
	}
	if got := Text(fields, "missing"); got != "" {
		t.Fatalf("Text(missing) = %q, want empty", got)
	}
	if got := Int(fields, "cost"); got != 25 {
		t.Fatalf("Int(cost) = %d, want 25", got)
	}
	if got := Int(fields, "missing"); got != 0 {
		t.Fatalf("Int(missing) = %d, want 0", got)
	}
	if got := Number(fields, "weight"); got != 2.5 {
		t.Fatalf("Number(weight) = %v, want 2.5", got)
	}
}
