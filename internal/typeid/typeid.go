package typeid

import (
	"fmt"

	"go.jetify.com/typeid/v2"
)

const (
	PrefixEntity     = "ent"
	PrefixCollection = "grp"
	PrefixControl    = "ctl"
	PrefixSession    = "sess"
	PrefixAsset      = "img"
)

func New(prefix string) string {
	id := typeid.MustGenerate(prefix)
	return id.String()
}

func NewEntityID() string     { return New(PrefixEntity) }
func NewCollectionID() string { return New(PrefixCollection) }
func NewControlID() string    { return New(PrefixControl) }
func NewSessionID() string    { return New(PrefixSession) }
func NewAssetID() string      { return New(PrefixAsset) }

func Validate(id, expectedPrefix string) error {
	parsed, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid typeid %q: %w", id, err)
	}
	if parsed.Prefix() != expectedPrefix {
		return fmt.Errorf("expected prefix %q but got %q in id %q", expectedPrefix, parsed.Prefix(), id)
	}
	return nil
}
