package diskcache

import "fmt"

// Category identifies one of the fixed content kinds held by the cache.
type Category uint8

const (
	Object Category = iota
	Image
	Voice

	numCategories = 3
)

// categoryPolicy is the per-category storage policy. New categories only
// need a row here.
type categoryPolicy struct {
	tag        string
	suffix     string
	newEncoder func(opts CacheOptions) Encoder
}

var policies = [numCategories]categoryPolicy{
	Object: {tag: "ELObject", newEncoder: newObjectEncoder},
	Image:  {tag: "ELImage", newEncoder: newImageEncoder},
	Voice:  {tag: "ELVoice", suffix: ".wav", newEncoder: newVoiceEncoder},
}

// Categories returns every known category in declaration order.
func Categories() []Category {
	return []Category{Object, Image, Voice}
}

func (c Category) valid() bool { return c < numCategories }

func (c Category) policy() categoryPolicy {
	if !c.valid() {
		panic(fmt.Sprintf("diskcache: unknown category %d", c))
	}
	return policies[c]
}

// String returns the directory tag of the category.
func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", uint8(c))
	}
	return policies[c].tag
}

// Suffix returns the file extension appended to digests of this category.
func (c Category) Suffix() string {
	return c.policy().suffix
}

// ParseCategory maps a tag ("ELVoice") or a short name ("voice") to a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "ELObject", "object":
		return Object, nil
	case "ELImage", "image":
		return Image, nil
	case "ELVoice", "voice":
		return Voice, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}
