// Package suite holds the static catalogs of Robot Framework run
// configurations, one per API domain.
package suite

import (
	"fmt"
	"strconv"
)

// RunConfiguration describes a single runner invocation. Values are passed
// through to the runner unvalidated.
type RunConfiguration struct {
	Description string
	TestPath    string
	TestName    string
	IncludeTags []string
	ExcludeTags []string
}

// Entry binds a menu key to a configuration.
type Entry struct {
	Key    string
	Config RunConfiguration
}

// Catalog is the fixed menu for one domain.
type Catalog struct {
	Domain          string // subcommand name, e.g. "auth"
	Title           string // banner heading
	Subtitle        string
	DefaultPath     string // used when a configuration has no TestPath
	ResultSubDomain string // directory under the results root, e.g. "auth_api"
	Entries         []Entry

	// Reserved keys. Empty means the catalog does not offer them.
	CustomTagKey string
	TestNameKey  string
	ExitKey      string

	// Reprompt makes the interactive menu ask again on an invalid key
	// instead of failing.
	Reprompt bool
}

// Lookup returns the entry registered under key.
func (c *Catalog) Lookup(key string) (Entry, bool) {
	for _, e := range c.Entries {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// IsReserved reports whether key is one of the catalog's free-text or exit keys.
func (c *Catalog) IsReserved(key string) bool {
	if key == "" {
		return false
	}
	return key == c.CustomTagKey || key == c.TestNameKey || key == c.ExitKey
}

// Valid reports whether key selects something in this catalog.
func (c *Catalog) Valid(key string) bool {
	if c.IsReserved(key) {
		return true
	}
	_, ok := c.Lookup(key)
	return ok
}

// Keys returns every selectable key in menu order, reserved keys last.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Entries)+3)
	for _, e := range c.Entries {
		keys = append(keys, e.Key)
	}
	for _, k := range []string{c.CustomTagKey, c.TestNameKey} {
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

// ValidRange renders the accepted keys for error messages, e.g. "1-10".
// Catalogs whose keys are not a contiguous numeric run are listed in full.
func (c *Catalog) ValidRange() string {
	keys := c.Keys()
	if c.ExitKey != "" {
		keys = append([]string{c.ExitKey}, keys...)
	}
	if len(keys) == 0 {
		return ""
	}
	first, err := strconv.Atoi(keys[0])
	if err != nil {
		return fmt.Sprint(keys)
	}
	for i, k := range keys {
		n, err := strconv.Atoi(k)
		if err != nil || n != first+i {
			return fmt.Sprint(keys)
		}
	}
	if len(keys) == 1 {
		return keys[0]
	}
	return keys[0] + "-" + keys[len(keys)-1]
}

// CustomTag synthesizes a configuration that includes a single user-supplied tag.
func (c *Catalog) CustomTag(tag string) RunConfiguration {
	return RunConfiguration{
		Description: fmt.Sprintf("Custom Tag Tests (%s)", tag),
		TestPath:    c.DefaultPath,
		IncludeTags: []string{tag},
	}
}

// SpecificTest synthesizes a configuration that runs a single named test.
func (c *Catalog) SpecificTest(name string) RunConfiguration {
	return RunConfiguration{
		Description: fmt.Sprintf("Specific Test (%s)", name),
		TestPath:    c.DefaultPath,
		TestName:    name,
	}
}

// Describe returns the menu label for key, including reserved keys.
func (c *Catalog) Describe(key string) string {
	switch key {
	case "":
		return ""
	case c.CustomTagKey:
		return "Execute by custom TAG (user input)"
	case c.TestNameKey:
		return "Execute specific TEST by name (user input)"
	case c.ExitKey:
		return "Exit"
	}
	if e, ok := c.Lookup(key); ok {
		return e.Config.Description
	}
	return ""
}

var catalogs = []*Catalog{Auth(), Products(), Users()}

// All returns the built-in catalogs in display order.
func All() []*Catalog {
	return catalogs
}

// ByDomain returns the catalog registered for domain.
func ByDomain(domain string) (*Catalog, bool) {
	for _, c := range catalogs {
		if c.Domain == domain {
			return c, true
		}
	}
	return nil, false
}
