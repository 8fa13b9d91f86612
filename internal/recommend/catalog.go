package recommend

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templatesYAML []byte

// constError mirrors the sentinel error convention used across the
// module.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidTemplateCatalog indicates the embedded template catalog
// failed to load.
const ErrInvalidTemplateCatalog = constError("invalid recommendation template catalog")

type templateFile struct {
	Version string          `yaml:"version"`
	Groups  []templateGroup `yaml:"groups"`
}

type templateGroup struct {
	Category  Group      `yaml:"category"`
	Templates []Template `yaml:"templates"`
}

// Catalog is the immutable, versioned template catalog. Group order is
// the YAML declaration order and drives tie-breaking.
type Catalog struct {
	version string
	groups  []Group
	byGroup map[Group][]Template
}

var (
	catalogOnce sync.Once
	catalog     *Catalog
	catalogErr  error
)

// LoadCatalog parses the embedded template catalog once per process.
func LoadCatalog() (*Catalog, error) {
	catalogOnce.Do(func() {
		var tf templateFile
		if err := yaml.Unmarshal(templatesYAML, &tf); err != nil {
			catalogErr = fmt.Errorf("%w: %v", ErrInvalidTemplateCatalog, err)
			return
		}
		if _, err := semver.NewVersion(tf.Version); err != nil {
			catalogErr = fmt.Errorf("%w: version %q is not valid semver", ErrInvalidTemplateCatalog, tf.Version)
			return
		}

		c := &Catalog{
			version: tf.Version,
			byGroup: make(map[Group][]Template, len(tf.Groups)),
		}
		seen := make(map[string]struct{})
		for _, g := range tf.Groups {
			templates := make([]Template, len(g.Templates))
			for i, t := range g.Templates {
				if _, dup := seen[t.ID]; dup {
					catalogErr = fmt.Errorf("%w: duplicate template id %q", ErrInvalidTemplateCatalog, t.ID)
					return
				}
				seen[t.ID] = struct{}{}
				t.Group = g.Category
				templates[i] = t
			}
			c.groups = append(c.groups, g.Category)
			c.byGroup[g.Category] = templates
		}
		catalog = c
	})
	return catalog, catalogErr
}

// Version returns the catalog's semver version string.
func (c *Catalog) Version() string { return c.version }

// Groups returns the groups in declaration order.
func (c *Catalog) Groups() []Group { return c.groups }

// TemplatesFor returns the templates of one group in declaration
// order, or nil for an unknown group.
func (c *Catalog) TemplatesFor(group Group) []Template {
	return c.byGroup[group]
}

// All returns every template across groups in declaration order.
func (c *Catalog) All() []Template {
	var all []Template
	for _, g := range c.groups {
		all = append(all, c.byGroup[g]...)
	}
	return all
}
