package models

// TypeTag identifies the kind of entity an interaction points at. The set
// of valid tags is fixed by the resolvers registered at startup.
type TypeTag string

const (
	ContentTypeMedia   TypeTag = "media"
	ContentTypePlace   TypeTag = "place"
	ContentTypeProfile TypeTag = "profile"
	ContentTypeComment TypeTag = "comment"
)

// ContentRef addresses one content entity by kind and id. ObjectID is a
// string so Postgres row ids and Mongo object ids travel the same way.
type ContentRef struct {
	ContentType TypeTag `json:"content_type"`
	ObjectID    string  `json:"object_id"`
}

// ResolvedContent is the minimal display shape of a referenced entity. Only
// the fields meaningful for the entity's kind are set. OwnerID addresses
// activity notifications and is never serialized.
type ResolvedContent struct {
	Type    TypeTag `json:"type"`
	ID      string  `json:"id"`
	Title   string  `json:"title,omitempty"`
	Name    string  `json:"name,omitempty"`
	Text    string  `json:"text,omitempty"`
	URL     string  `json:"url,omitempty"`
	OwnerID uint    `json:"-"`
}
