package types

type Idea struct {
	Doc      `bson:",inline"`
	Name     string    `bson:"name" json:"name"`
	Title    string    `bson:"title" json:"title"`
	Concept  string    `bson:"concept" json:"concept"`
	Category string    `bson:"category" json:"category"`
	URL      string    `bson:"url" json:"url"`
	Roles    []string  `bson:"roles" json:"roles"`
	Stage    string    `bson:"stage" json:"stage"`
	Need     float64   `bson:"need" json:"need"`
	Thoughts []Thought `bson:"thoughts" json:"thoughts"`
	Quotes   []Quote   `bson:"quotes" json:"quotes"`
}

type Thought struct {
	ShortID  string  `bson:"shortid" json:"shortid"`
	Name     string  `bson:"name" json:"name"`
	Title    string  `bson:"title" json:"title"`
	Category string  `bson:"category" json:"category"`
	Rating   float64 `bson:"rating" json:"rating"`
	Image    string  `bson:"image" json:"image"`
}

func (t Thought) EntryID() string { return t.ShortID }

type Quote struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Name    string `bson:"name" json:"name"`
	Text    string `bson:"text" json:"text"`
	Status  string `bson:"status" json:"status"`
	Faculty string `bson:"faculty" json:"faculty"`
	DateUp  string `bson:"dateUp" json:"dateUp"`
}

func (q Quote) EntryID() string { return q.ShortID }
