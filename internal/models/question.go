package models

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID                   string   `bson:"_id,omitempty" json:"id"`
	PatternID            string   `bson:"pattern_id" json:"pattern_id"`
	Content              string   `bson:"content" json:"content"`
	Type                 string   `bson:"type" json:"type"`
	Options              []Option `bson:"options" json:"options"`
	CorrectAnswer        string   `bson:"correct_answer" json:"correct_answer"`
	Explanation          string   `bson:"explanation" json:"explanation"`
	Section              string   `bson:"section" json:"section"`
	DifficultyLevel      string   `bson:"difficulty_level" json:"difficulty_level"`
	BloomLevel           string   `bson:"bloom_level" json:"bloom_level"`
	Points               int      `bson:"points" json:"points"`
	EstimatedTimeSeconds int      `bson:"estimated_time_seconds" json:"estimated_time_seconds"`
	TopicTags            []string `bson:"topic_tags" json:"topic_tags"`
}

// Sections a question can belong to (topic-area categories, distinct from
// Bloom level and difficulty).
const (
	SectionTheory      = "theory"
	SectionCode        = "code"
	SectionApplication = "application"
	SectionStructure   = "structure"
)

const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Sections returns the known section names in their canonical order.
func Sections() []string {
	return []string{SectionTheory, SectionCode, SectionApplication, SectionStructure}
}

// Difficulties returns the known difficulty tiers in ascending order.
func Difficulties() []string {
	return []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// BloomLevels returns Bloom's taxonomy levels from lowest to highest.
func BloomLevels() []string {
	return []string{"remember", "understand", "apply", "analyze", "evaluate", "create"}
}

// BloomBasePoints defines default point values for each Bloom taxonomy level
var BloomBasePoints = map[string]int{
	"remember":   10,
	"understand": 15,
	"apply":      20,
	"analyze":    25,
	"evaluate":   30,
	"create":     35,
}

// EnsurePoints assigns default points from the Bloom level when unset
func (q *Question) EnsurePoints() {
	if q.Points > 0 {
		return
	}
	if base, exists := BloomBasePoints[q.BloomLevel]; exists {
		q.Points = base
	} else {
		q.Points = 10
	}
}
