package seed

import (
	"fmt"
	"math/rand/v2"

	"github.com/idilsaglam/checklists/internal/model"
)

// DefaultTasks is the pool random checklists draw from.
var DefaultTasks = []string{
	"Water the plants",
	"Call mom",
	"Pay the bills",
	"Take out the trash",
	"Walk the dog",
	"Answer emails",
	"Book a dentist appointment",
	"Go to the gym",
	"Read a chapter",
	"Plan the weekend",
	"Fix the bike",
	"Back up the laptop",
}

// RandomTaskCount is how many tasks a random checklist gets.
const RandomTaskCount = 4

// Generator builds numbered demo checklists with random content.
type Generator struct {
	rng   *rand.Rand
	tasks []string
	next  int
}

// NewGenerator returns a generator. seed 0 picks a random seed.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		tasks: DefaultTasks,
		next:  1,
	}
}

// Next returns "Random checklist N" with distinct tasks, each randomly
// checked. N starts at 1 and increases with every call.
func (g *Generator) Next() model.Checklist {
	pool := make([]string, len(g.tasks))
	copy(pool, g.tasks)
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

	n := min(RandomTaskCount, len(pool))
	items := make([]model.Item, 0, n)
	for _, text := range pool[:n] {
		items = append(items, model.Item{Text: text, Checked: g.rng.IntN(2) == 1})
	}

	cl := model.Checklist{
		Name:  fmt.Sprintf("Random checklist %d", g.next),
		Icon:  model.IconAndroid,
		Items: items,
	}
	g.next++
	return cl
}
