package seed

import (
	"fmt"
	"io/fs"
	"strings"
)

// Pack file names looked up in the content source. A missing file is
// skipped so a directory can carry a subset of the packs.
const (
	attributesFile = "attributes.yaml"
	speciesFile    = "species.yaml"
	classesFile    = "classes.yaml"
	skillsFile     = "skills.yaml"
)

type contentPacks struct {
	Attributes *attributePack
	Species    *speciesPack
	Classes    *classPack
	Skills     *skillPack
}

type attributePack struct {
	Attributes []attributeRecord `yaml:"attributes"`
}

type attributeRecord struct {
	Name         string `yaml:"name"`
	Abbreviation string `yaml:"abbreviation"`
	Description  string `yaml:"description"`
}

type speciesPack struct {
	Species []speciesRecord `yaml:"species"`
}

type speciesRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type classPack struct {
	Classes []classRecord `yaml:"classes"`
}

type classRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type skillPack struct {
	Skills []skillRecord `yaml:"skills"`
}

type skillRecord struct {
	Name        string `yaml:"name"`
	Attribute   string `yaml:"attribute"`
	Description string `yaml:"description"`
}

func readPacks(fsys fs.FS) (contentPacks, error) {
	var packs contentPacks
	var err error
	packs.Attributes, err = readYAML[attributePack](fsys, attributesFile)
	if err != nil {
		return packs, err
	}
	packs.Species, err = readYAML[speciesPack](fsys, speciesFile)
	if err != nil {
		return packs, err
	}
	packs.Classes, err = readYAML[classPack](fsys, classesFile)
	if err != nil {
		return packs, err
	}
	packs.Skills, err = readYAML[skillPack](fsys, skillsFile)
	if err != nil {
		return packs, err
	}

	return packs, nil
}

func (p contentPacks) count() int {
	total := 0
	if p.Attributes != nil {
		total += len(p.Attributes.Attributes)
	}
	if p.Species != nil {
		total += len(p.Species.Species)
	}
	if p.Classes != nil {
		total += len(p.Classes.Classes)
	}
	if p.Skills != nil {
		total += len(p.Skills.Skills)
	}
	return total
}

func validatePacks(packs contentPacks) error {
	if packs.Attributes != nil {
		for i, record := range packs.Attributes.Attributes {
			if strings.TrimSpace(record.Name) == "" {
				return fmt.Errorf("%s: record %d: name is required", attributesFile, i)
			}
		}
	}
	if packs.Species != nil {
		for i, record := range packs.Species.Species {
			if strings.TrimSpace(record.Name) == "" {
				return fmt.Errorf("%s: record %d: name is required", speciesFile, i)
			}
		}
	}
	if packs.Classes != nil {
		for i, record := range packs.Classes.Classes {
			if strings.TrimSpace(record.Name) == "" {
				return fmt.Errorf("%s: record %d: name is required", classesFile, i)
			}
		}
	}
	if packs.Skills != nil {
		for i, record := range packs.Skills.Skills {
			if strings.TrimSpace(record.Name) == "" {
				return fmt.Errorf("%s: record %d: name is required", skillsFile, i)
			}
			if strings.TrimSpace(record.Attribute) == "" {
				return fmt.Errorf("%s: skill %s: attribute is required", skillsFile, record.Name)
			}
		}
	}
	return nil
}
