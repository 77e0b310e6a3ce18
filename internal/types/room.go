package types

type Room struct {
	Doc       `bson:",inline"`
	Name      string   `bson:"name" json:"name"`
	Title     string   `bson:"title" json:"title"`
	Faculty   string   `bson:"faculty" json:"faculty"`
	Dormitory string   `bson:"dormitory" json:"dormitory"`
	Num       float64  `bson:"num" json:"num"`
	Weekday   string   `bson:"weekday" json:"weekday"`
	Time      string   `bson:"time" json:"time"`
	Cords     Cord     `bson:"cords" json:"cords"`
	Members   []Member `bson:"members" json:"members"`
	Tasks     []Task   `bson:"tasks" json:"tasks"`
}

// Member's ShortID is the member profile's shortid, not a generated one:
// join and leave match members by profile.
type Member struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Name    string `bson:"name" json:"name"`
	Role    string `bson:"role" json:"role"`
}

func (m Member) EntryID() string { return m.ShortID }

type Task struct {
	ShortID  string `bson:"shortid" json:"shortid"`
	Name     string `bson:"name" json:"name"`
	Text     string `bson:"text" json:"text"`
	Category string `bson:"category" json:"category"`
	Deadline string `bson:"deadline" json:"deadline"`
	Image    string `bson:"image" json:"image"`
}

func (t Task) EntryID() string { return t.ShortID }
