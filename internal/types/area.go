package types

type Area struct {
	Doc       `bson:",inline"`
	Name      string     `bson:"name" json:"name"`
	Title     string     `bson:"title" json:"title"`
	Category  string     `bson:"category" json:"category"`
	Century   string     `bson:"century" json:"century"`
	Region    string     `bson:"region" json:"region"`
	Cords     Cord       `bson:"cords" json:"cords"`
	Faculty   string     `bson:"faculty" json:"faculty"`
	Locations []Location `bson:"locations" json:"locations"`
	Facts     []Fact     `bson:"facts" json:"facts"`
}

type Location struct {
	ShortID  string `bson:"shortid" json:"shortid"`
	Name     string `bson:"name" json:"name"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"`
	Term     string `bson:"term" json:"term"`
	Cords    Cord   `bson:"cords" json:"cords"`
	Stage    string `bson:"stage" json:"stage"`
	Image    string `bson:"image" json:"image"`
	Likes    string `bson:"likes" json:"likes"`
}

func (l Location) EntryID() string { return l.ShortID }

type Fact struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Name    string `bson:"name" json:"name"`
	Text    string `bson:"text" json:"text"`
	Level   string `bson:"level" json:"level"`
	IsTruth bool   `bson:"isTruth" json:"isTruth"`
	DateUp  string `bson:"dateUp" json:"dateUp"`
}

func (f Fact) EntryID() string { return f.ShortID }
