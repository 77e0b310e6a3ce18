package types

type Profile struct {
	Doc          `bson:",inline"`
	Name         string        `bson:"name" json:"name"`
	Email        string        `bson:"email" json:"email"`
	Password     string        `bson:"password" json:"-"`
	Region       string        `bson:"region" json:"region"`
	Cords        Cord          `bson:"cords" json:"cords"`
	Status       string        `bson:"status" json:"status"`
	Points       float64       `bson:"points" json:"points"`
	Image        string        `bson:"image" json:"image"`
	Timestamp    string        `bson:"timestamp" json:"timestamp"`
	Achievements []Achievement `bson:"achievements" json:"achievements"`
	Projects     []Project     `bson:"projects" json:"projects"`
	Components   []Component   `bson:"components" json:"components"`
}

type Achievement struct {
	ShortID  string `bson:"shortid" json:"shortid"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"`
	Image    string `bson:"image" json:"image"`
	DateUp   string `bson:"dateUp" json:"dateUp"`
}

func (a Achievement) EntryID() string { return a.ShortID }

type Project struct {
	ShortID  string  `bson:"shortid" json:"shortid"`
	Title    string  `bson:"title" json:"title"`
	Category string  `bson:"category" json:"category"`
	Progress float64 `bson:"progress" json:"progress"`
	Image    string  `bson:"image" json:"image"`
	Likes    string  `bson:"likes" json:"likes"`
}

func (p Project) EntryID() string { return p.ShortID }

// ProfilePayload is the register/login response: enough for the client to
// keep a session cookie, nothing more.
type ProfilePayload struct {
	ShortID string `json:"shortid"`
	Name    string `json:"name"`
}
