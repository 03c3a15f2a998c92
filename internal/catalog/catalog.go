// Package catalog provides the position requirement catalog and the learning
// resource table used by skill-gap analysis.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/skillgap-advisor/internal/types"
)

// Document is the persisted form of the position catalog, keyed by position id
type Document map[string]types.PositionProfile

// Catalog is an immutable snapshot of position requirements and learning
// resources. It is safe for concurrent reads and is never mutated after New.
type Catalog struct {
	positions map[string]types.PositionProfile
	names     []string
	resources map[string]types.LearningResource

	fingerprint string
}

// New validates the document and builds a catalog from copies of its entries.
func New(doc Document, resources map[string]types.LearningResource) (*Catalog, error) {
	validate := validator.New()

	positions := make(map[string]types.PositionProfile, len(doc))
	names := make([]string, 0, len(doc))
	for name, profile := range doc {
		if strings.TrimSpace(name) == "" {
			return nil, &InvalidCatalogError{Position: name, Message: "position id is empty"}
		}
		if err := validate.Struct(&profile); err != nil {
			return nil, &InvalidCatalogError{Position: name, Message: "profile failed validation", Cause: err}
		}
		positions[name] = cloneProfile(profile)
		names = append(names, name)
	}
	sort.Strings(names)

	res := make(map[string]types.LearningResource, len(resources))
	for skill, resource := range resources {
		res[skill] = resource
	}

	return &Catalog{
		positions:   positions,
		names:       names,
		resources:   res,
		fingerprint: fingerprint(positions, res),
	}, nil
}

// fingerprint hashes the catalog content. encoding/json sorts map keys, and
// career levels keep their stored order, so equal catalogs hash equally.
func fingerprint(positions map[string]types.PositionProfile, resources map[string]types.LearningResource) string {
	data, err := json.Marshal(struct {
		Positions map[string]types.PositionProfile  `json:"positions"`
		Resources map[string]types.LearningResource `json:"resources"`
	}{positions, resources})
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Fingerprint returns a content hash of the catalog. Reports built from
// catalogs with different fingerprints may differ for the same candidate.
func (c *Catalog) Fingerprint() string {
	return c.fingerprint
}

// Default returns a catalog built from the built-in positions and resources
func Default() *Catalog {
	c, err := New(DefaultPositions(), DefaultResources())
	if err != nil {
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}

// Lookup returns the requirements of a normalized position name.
// The returned profile shares storage with the catalog and must not be modified.
func (c *Catalog) Lookup(position string) (types.PositionProfile, bool) {
	profile, ok := c.positions[position]
	return profile, ok
}

// Positions returns the catalog position ids in sorted order
func (c *Catalog) Positions() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// Len returns the number of positions in the catalog
func (c *Catalog) Len() int {
	return len(c.names)
}

// Resource returns the learning resources for an exact skill name
func (c *Catalog) Resource(skill string) (types.LearningResource, bool) {
	resource, ok := c.resources[skill]
	return resource, ok
}

// Document returns a copy of the position entries in persisted form
func (c *Catalog) Document() Document {
	doc := make(Document, len(c.positions))
	for name, profile := range c.positions {
		doc[name] = cloneProfile(profile)
	}
	return doc
}

func cloneProfile(p types.PositionProfile) types.PositionProfile {
	clone := types.PositionProfile{
		RequiredSkills: cloneStrings(p.RequiredSkills),
		AdvancedSkills: cloneStrings(p.AdvancedSkills),
		ToolSkills:     cloneStrings(p.ToolSkills),
		BusinessSkills: cloneStrings(p.BusinessSkills),
	}
	if p.CareerProgression != nil {
		clone.CareerProgression = make(types.CareerProgression, len(p.CareerProgression))
		for i, level := range p.CareerProgression {
			clone.CareerProgression[i] = types.CareerLevel{Name: level.Name, Skills: cloneStrings(level.Skills)}
		}
	}
	return clone
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
