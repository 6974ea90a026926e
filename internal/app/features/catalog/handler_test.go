package catalog

import (
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/iglesiacentral/gruposhub/internal/domain/models"
)

func namedGroups(names ...string) []models.Group {
	out := make([]models.Group, 0, len(names))
	for _, n := range names {
		out = append(out, models.Group{ID: primitive.NewObjectID(), Name: n})
	}
	return out
}

func names(groups []models.Group) []string {
	out := make([]string, 0, len(groups))
	for _, g := range groups {
		out = append(out, g.Name)
	}
	return out
}

func TestShuffle_DeterministicPerSeed(t *testing.T) {
	a := namedGroups("A", "B", "C", "D", "E", "F")
	b := namedGroups("A", "B", "C", "D", "E", "F")

	Shuffle(a, 42)
	Shuffle(b, 42)

	if !reflect.DeepEqual(names(a), names(b)) {
		t.Errorf("same seed produced different orders: %v vs %v", names(a), names(b))
	}
}

func TestShuffle_DifferentSeedsDiffer(t *testing.T) {
	a := namedGroups("A", "B", "C", "D", "E", "F", "G", "H")
	b := namedGroups("A", "B", "C", "D", "E", "F", "G", "H")

	Shuffle(a, 1)
	Shuffle(b, 2)

	if reflect.DeepEqual(names(a), names(b)) {
		t.Error("expected different seeds to produce different orders")
	}
}

func TestShuffle_KeepsAllElements(t *testing.T) {
	groups := namedGroups("A", "B", "C", "D")
	Shuffle(groups, 7)

	seen := map[string]bool{}
	for _, g := range groups {
		seen[g.Name] = true
	}
	for _, want := range []string{"A", "B", "C", "D"} {
		if !seen[want] {
			t.Errorf("element %q lost in shuffle", want)
		}
	}
}
