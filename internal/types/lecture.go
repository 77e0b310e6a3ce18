package types

type Lecture struct {
	Doc       `bson:",inline"`
	Name      string     `bson:"name" json:"name"`
	Title     string     `bson:"title" json:"title"`
	Category  string     `bson:"category" json:"category"`
	Status    string     `bson:"status" json:"status"`
	Duration  string     `bson:"duration" json:"duration"`
	URL       string     `bson:"url" json:"url"`
	Time      string     `bson:"time" json:"time"`
	DateUp    string     `bson:"dateUp" json:"dateUp"`
	Stream    string     `bson:"stream" json:"stream"`
	Card      string     `bson:"card" json:"card"`
	Questions []Question `bson:"questions" json:"questions"`
	Details   []Detail   `bson:"details" json:"details"`
}

type Question struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Name    string `bson:"name" json:"name"`
	Text    string `bson:"text" json:"text"`
	Level   string `bson:"level" json:"level"`
	Reply   string `bson:"reply" json:"reply"`
	DateUp  string `bson:"dateUp" json:"dateUp"`
}

func (q Question) EntryID() string { return q.ShortID }

type Detail struct {
	ShortID  string  `bson:"shortid" json:"shortid"`
	Name     string  `bson:"name" json:"name"`
	Title    string  `bson:"title" json:"title"`
	Category string  `bson:"category" json:"category"`
	Image    string  `bson:"image" json:"image"`
	Rating   float64 `bson:"rating" json:"rating"`
}

func (d Detail) EntryID() string { return d.ShortID }
