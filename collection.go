package iconkit

import "fmt"

// Collection is an ordered set of icons addressed by key. The insertion
// order is the order used by every stage and by the exporter.
type Collection struct {
	keys  []string
	icons map[string]Icon
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{icons: make(map[string]Icon)}
}

// Add appends an icon. Adding a key twice is an error.
func (c *Collection) Add(icon Icon) error {
	if c.icons == nil {
		c.icons = make(map[string]Icon)
	}
	if _, ok := c.icons[icon.Key()]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateKey, icon.Key())
	}
	c.keys = append(c.keys, icon.Key())
	c.icons[icon.Key()] = icon
	return nil
}

// Get returns the icon stored under key.
func (c *Collection) Get(key string) (Icon, bool) {
	icon, ok := c.icons[key]
	return icon, ok
}

// Set replaces an existing icon in place, keeping its position.
// It never adds new keys.
func (c *Collection) Set(icon Icon) error {
	if _, ok := c.icons[icon.Key()]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKey, icon.Key())
	}
	c.icons[icon.Key()] = icon
	return nil
}

// Keys returns the icon keys in insertion order.
func (c *Collection) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Len returns the number of icons.
func (c *Collection) Len() int { return len(c.keys) }

// Each calls fn for every icon in insertion order and stops at the first error.
func (c *Collection) Each(fn func(Icon) error) error {
	for _, key := range c.keys {
		if err := fn(c.icons[key]); err != nil {
			return err
		}
	}
	return nil
}
