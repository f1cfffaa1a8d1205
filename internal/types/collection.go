package types

// Output collection names, also used for the split_<name> file names.
const (
	MealsName   = "meals"
	FitnessName = "fitness"
	TotalsName  = "totals"
	WeightsName = "weights"
	WaterName   = "water"
)

var (
	MealsHeader = []string{"Date", "Meal", "Item Brand", "Item Name", "Your Servings", "Your Total Calories",
		"Your Total Sugars", "Your Total Carbs", "Your Total Fats", "Your Total Protein", "Your Total Cholesterol",
		"Your Total Sodium", "Your Total Dietary Fiber", "Calories", "Sugars", "Carbs", "Fats", "Protein",
		"Cholesterol", "Sodium", "Dietary Fiber"}

	FitnessHeader = []string{"Date", "Exercise Done", "Minutes", "Calories Burned", "Heart Rate", "Distance"}

	TotalsHeader = []string{"Date", "Calories", "Sugars", "Carbohydrates", "Fat", "Protein", "Cholesterol",
		"Sodium", "Dietary Fiber", "Calories Allowed", "Calories Consumed", "Calories Burned", "Net Calories"}

	WeightsHeader = []string{"Date", "Weight"}

	WaterHeader = []string{"Date", "Glasses"}
)

// Collection is one output table. Records are only ever appended.
type Collection struct {
	Name    string
	Header  []string
	Records []Record
}

func NewCollection(name string, header []string) *Collection {
	return &Collection{
		Name:   name,
		Header: append([]string(nil), header...),
	}
}

func (c *Collection) Append(r Record) {
	c.Records = append(c.Records, r)
}

// Rows returns the header followed by every record, ready to be written out.
func (c *Collection) Rows() [][]string {
	rows := make([][]string, 0, len(c.Records)+1)
	rows = append(rows, c.Header)
	for _, r := range c.Records {
		rows = append(rows, r)
	}
	return rows
}

// Collections groups the five outputs of a split.
type Collections struct {
	Meals   *Collection
	Fitness *Collection
	Totals  *Collection
	Weights *Collection
	Water   *Collection
}

// NewCollections returns empty collections seeded with their fixed headers.
func NewCollections() *Collections {
	return &Collections{
		Meals:   NewCollection(MealsName, MealsHeader),
		Fitness: NewCollection(FitnessName, FitnessHeader),
		Totals:  NewCollection(TotalsName, TotalsHeader),
		Weights: NewCollection(WeightsName, WeightsHeader),
		Water:   NewCollection(WaterName, WaterHeader),
	}
}

// All returns the collections in output order.
func (c *Collections) All() []*Collection {
	return []*Collection{c.Meals, c.Fitness, c.Totals, c.Weights, c.Water}
}
