package target

import (
	"sort"
	"strings"

	"github.com/OpenTraceLab/OpenTraceSWO/pkg/script"
)

// tier orders script candidates of the same name: overlay definitions beat
// built-in definitions regardless of load order.
type tier uint8

const (
	tierBuiltin tier = iota
	tierOverlay
)

type candidate struct {
	sc   *script.Script
	tier tier
	seq  int // global insertion counter, later declarations win within a tier
}

// registry holds the compiled scripts of the loaded MCU, keyed by lowercased
// name. Precedence is explicit: overlay over built-in, then latest
// declaration within a tier.
type registry struct {
	byName map[string][]candidate
	nextID int
	count  int
}

func newRegistry() *registry {
	return &registry{byName: make(map[string][]candidate)}
}

func (r *registry) add(sc *script.Script, t tier) {
	key := strings.ToLower(sc.Name)
	r.byName[key] = append(r.byName[key], candidate{sc: sc, tier: t, seq: r.nextID})
	r.nextID++
	r.count++
}

// lookup returns the winning candidate for a name, case-insensitively.
func (r *registry) lookup(name string) (*script.Script, bool) {
	cands := r.byName[strings.ToLower(name)]
	if len(cands) == 0 {
		return nil, false
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if c.tier > best.tier || (c.tier == best.tier && c.seq > best.seq) {
			best = c
		}
	}
	return best.sc, true
}

// names returns the distinct script names, sorted.
func (r *registry) names() []string {
	out := make([]string, 0, len(r.byName))
	for key := range r.byName {
		sc, _ := r.lookup(key)
		out = append(out, sc.Name)
	}
	sort.Strings(out)
	return out
}

// len returns the total number of compiled scripts, counting shadowed
// candidates as well.
func (r *registry) len() int {
	return r.count
}
