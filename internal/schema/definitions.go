package schema

// AttributeNames is the payload shape for the attribute_names family.
var AttributeNames = Schema{
	Entity: "attribute",
	Fields: []Field{
		{Name: "name", Kind: KindText, Required: true, Key: true},
		{Name: "abbreviation", Kind: KindText},
		{Name: "description", Kind: KindText},
	},
}

// Species is the payload shape for the species family.
var Species = Schema{
	Entity: "species",
	Fields: []Field{
		{Name: "name", Kind: KindText, Required: true, Key: true},
		{Name: "description", Kind: KindText},
	},
}

// Classes is the payload shape for the classes family.
var Classes = Schema{
	Entity: "class",
	Fields: []Field{
		{Name: "name", Kind: KindText, Required: true, Key: true},
		{Name: "description", Kind: KindText},
	},
}

// Skills is the payload shape for the skills family.
var Skills = Schema{
	Entity: "skill",
	Fields: []Field{
		{Name: "name", Kind: KindText, Required: true, Key: true},
		{Name: "attribute", Kind: KindText, Required: true},
		{Name: "description", Kind: KindText},
	},
}

// Items is the payload shape for the items family. Items carry a surrogate
// id, so every named field stays updatable.
var Items = Schema{
	Entity: "item",
	Fields: []Field{
		{Name: "name", Kind: KindText, Required: true},
		{Name: "kind", Kind: KindText},
		{Name: "weight", Kind: KindNumber},
		{Name: "cost", Kind: KindInt},
		{Name: "description", Kind: KindText},
	},
}

// Characters is the payload shape for the characters family.
var Characters = Schema{
	Entity: "character",
	Fields: []Field{
		{Name: "name", Kind: KindText, Required: true},
		{Name: "player", Kind: KindText},
		{Name: "species", Kind: KindText, Required: true},
		{Name: "class", Kind: KindText, Required: true},
		{Name: "level", Kind: KindInt},
		{Name: "experience", Kind: KindInt},
		{Name: "notes", Kind: KindText},
	},
}

// CharacterAttributes is the payload shape for one attribute score. The
// character id and attribute name travel in the URL, not the body.
var CharacterAttributes = Schema{
	Entity: "character attribute",
	Fields: []Field{
		{Name: "value", Kind: KindInt, Required: true},
	},
}

// CharacterSkills is the payload shape for one skill rating.
var CharacterSkills = Schema{
	Entity: "character skill",
	Fields: []Field{
		{Name: "level", Kind: KindInt, Required: true},
	},
}
