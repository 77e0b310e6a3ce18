package types

type Material struct {
	Doc       `bson:",inline"`
	Name      string     `bson:"name" json:"name"`
	Title     string     `bson:"title" json:"title"`
	Category  string     `bson:"category" json:"category"`
	Course    float64    `bson:"course" json:"course"`
	Subjects  []string   `bson:"subjects" json:"subjects"`
	Year      float64    `bson:"year" json:"year"`
	Rating    float64    `bson:"rating" json:"rating"`
	Resources []Resource `bson:"resources" json:"resources"`
	Conspects []Conspect `bson:"conspects" json:"conspects"`
}

type Resource struct {
	ShortID string `bson:"shortid" json:"shortid"`
	Name    string `bson:"name" json:"name"`
	Title   string `bson:"title" json:"title"`
	Format  string `bson:"format" json:"format"`
	URL     string `bson:"url" json:"url"`
	DateUp  string `bson:"dateUp" json:"dateUp"`
}

func (r Resource) EntryID() string { return r.ShortID }

type Conspect struct {
	ShortID  string `bson:"shortid" json:"shortid"`
	Name     string `bson:"name" json:"name"`
	Text     string `bson:"text" json:"text"`
	Category string `bson:"category" json:"category"`
	Semester string `bson:"semester" json:"semester"`
	Image    string `bson:"image" json:"image"`
	Likes    string `bson:"likes" json:"likes"`
}

func (c Conspect) EntryID() string { return c.ShortID }
