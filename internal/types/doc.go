package types

// Doc carries the identity and optimistic-concurrency fields shared by every
// top-level document. Version is checked and bumped on every replace.
type Doc struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Version int64  `bson:"version" json:"-"`
}

func (d *Doc) DocShortID() string    { return d.ShortID }
func (d *Doc) DocVersion() int64     { return d.Version }
func (d *Doc) SetDocVersion(v int64) { d.Version = v }

// Document is implemented by every top-level model via the embedded Doc.
type Document interface {
	DocShortID() string
	DocVersion() int64
	SetDocVersion(int64)
}

type Cord struct {
	Lat  float64 `bson:"lat" json:"lat"`
	Long float64 `bson:"long" json:"long"`
}

// Kind discriminates the satellite domains inside a profile's components.
type Kind string

const (
	KindMaterial Kind = "material"
	KindRoom     Kind = "room"
	KindLecture  Kind = "lecture"
	KindArea     Kind = "area"
	KindIdea     Kind = "idea"
)

// Component is the denormalized pointer from a Profile to a satellite
// entity it owns or has joined.
type Component struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Title   string `bson:"title" json:"title"`
	Kind    Kind   `bson:"kind" json:"kind"`
}
