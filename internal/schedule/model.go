package schedule

// Week is one finished week entry of a syllabus.
type Week struct {
	Label       string `json:"week" yaml:"week"`
	Date        Day    `json:"date" yaml:"date"`
	Topic       string `json:"topic" yaml:"topic"`
	Project     string `json:"project" yaml:"project"`
	CurrentWeek bool   `json:"currentWeek" yaml:"currentWeek"`
}

// Field names a directive key recognised in a syllabus.
type Field string

const (
	FieldBegin   Field = "begin"
	FieldWeek    Field = "week"
	FieldTopic   Field = "topic"
	FieldProject Field = "project"
)
