// Package roles scores resume bullets against the skill keywords expected
// for a target role.
package roles

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Definition lists the skills expected for a role.
type Definition struct {
	Required    []string `mapstructure:"required" json:"required"`
	Recommended []string `mapstructure:"recommended" json:"recommended"`
}

// Catalog maps category -> role name -> definition.
type Catalog map[string]map[string]Definition

// Builtin returns the default role catalog.
func Builtin() Catalog {
	return Catalog{
		"software": {
			"Backend Developer": {
				Required:    []string{"api", "sql", "database", "server", "rest"},
				Recommended: []string{"docker", "kubernetes", "redis", "microservices", "grpc", "postgresql"},
			},
			"Frontend Developer": {
				Required:    []string{"javascript", "css", "html", "react", "ui"},
				Recommended: []string{"typescript", "webpack", "accessibility", "nextjs", "vue"},
			},
			"DevOps Engineer": {
				Required:    []string{"ci", "cd", "deployment", "infrastructure", "automation"},
				Recommended: []string{"terraform", "ansible", "kubernetes", "aws", "monitoring", "prometheus"},
			},
		},
		"data": {
			"Data Engineer": {
				Required:    []string{"etl", "pipeline", "sql", "data", "warehouse"},
				Recommended: []string{"spark", "airflow", "kafka", "snowflake", "dbt"},
			},
			"Machine Learning Engineer": {
				Required:    []string{"model", "training", "python", "machine learning", "features"},
				Recommended: []string{"tensorflow", "pytorch", "mlops", "embeddings", "deployment"},
			},
		},
	}
}

// Merge decodes role overrides from untyped configuration (as produced by
// the config loader) and merges them over the catalog. Categories and roles
// present in raw replace builtin entries with the same name.
func (c Catalog) Merge(raw map[string]any) error {
	if len(raw) == 0 {
		return nil
	}

	var overrides Catalog
	if err := mapstructure.Decode(raw, &overrides); err != nil {
		return fmt.Errorf("decoding role overrides: %w", err)
	}

	for category, defs := range overrides {
		if _, ok := c[category]; !ok {
			c[category] = make(map[string]Definition, len(defs))
		}
		for role, def := range defs {
			c[category][role] = def
		}
	}

	return nil
}

// Find looks a role up across all categories.
func (c Catalog) Find(role string) (Definition, bool) {
	for _, defs := range c {
		if def, ok := defs[role]; ok {
			return def, true
		}
	}
	return Definition{}, false
}

// Names returns every role name in the catalog.
func (c Catalog) Names() []string {
	var names []string
	for _, defs := range c {
		for role := range defs {
			names = append(names, role)
		}
	}
	return names
}
