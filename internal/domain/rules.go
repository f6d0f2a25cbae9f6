package domain

import (
	"fmt"
	"sort"
)

// Rules validates proposed plays and orders competing plays. The Manager
// consumes this interface; StandardRules is the stock implementation.
type Rules interface {
	// Validate checks that cards form a legal combination and, when toBeat
	// is non-empty, that they beat it. Returns an error wrapping
	// ErrIllegalPlay otherwise.
	Validate(cards []Card, toBeat []Card) error
	// Compare reports 1 when a beats b, -1 when b beats a and 0 when
	// neither beats the other.
	Compare(a, b []Card) (int, error)
}

// CombinationType classifies a set of cards as one of the legal shapes.
type CombinationType int

const (
	Invalid CombinationType = iota
	Single
	Pair
	Triple
	TripleSingle // triple with a single kicker
	TriplePair   // triple with a pair kicker
	Straight     // 5+ consecutive singles, 2s and jokers excluded
	PairStraight // 3+ consecutive pairs, 2s and jokers excluded
	Airplane     // 2+ consecutive triples, bare
	AirplaneSingles
	AirplanePairs
	FourTwoSingles // quad with two single kickers
	FourTwoPairs   // quad with two pair kickers
	Bomb
	Rocket
)

// Combination is a classified play. Anchor is the effective rank that orders
// combinations of the same type and size.
type Combination struct {
	Type   CombinationType
	Anchor int
	Size   int
}

// IdentifyCombination classifies cards into a Combination, or Type Invalid.
func IdentifyCombination(cards []Card) Combination {
	n := len(cards)
	if n == 0 {
		return Combination{Type: Invalid}
	}

	counts := rankCounts(cards)
	ranks := sortedRanks(counts)

	if n == 1 {
		return Combination{Type: Single, Anchor: ranks[0], Size: 1}
	}
	if n == 2 && counts[NumberSmallJoker] == 1 && counts[NumberBigJoker] == 1 {
		return Combination{Type: Rocket, Anchor: NumberBigJoker, Size: 2}
	}
	if len(ranks) == 1 {
		switch n {
		case 2:
			return Combination{Type: Pair, Anchor: ranks[0], Size: 2}
		case 3:
			return Combination{Type: Triple, Anchor: ranks[0], Size: 3}
		case 4:
			return Combination{Type: Bomb, Anchor: ranks[0], Size: 4}
		}
		return Combination{Type: Invalid}
	}

	if n == 4 && hasShape(counts, 3, 1) {
		return Combination{Type: TripleSingle, Anchor: rankWithCount(counts, 3), Size: 4}
	}
	if n == 5 && hasShape(counts, 3, 2) {
		return Combination{Type: TriplePair, Anchor: rankWithCount(counts, 3), Size: 5}
	}
	if n >= 5 && isRun(counts, ranks, 1) {
		return Combination{Type: Straight, Anchor: ranks[len(ranks)-1], Size: n}
	}
	if n >= 6 && n%2 == 0 && len(ranks) >= 3 && isRun(counts, ranks, 2) {
		return Combination{Type: PairStraight, Anchor: ranks[len(ranks)-1], Size: n}
	}
	if n >= 6 && n%3 == 0 && isRun(counts, ranks, 3) {
		return Combination{Type: Airplane, Anchor: ranks[len(ranks)-1], Size: n}
	}
	if n == 6 && hasQuad(counts) {
		return Combination{Type: FourTwoSingles, Anchor: rankWithCount(counts, 4), Size: 6}
	}
	if n == 8 && hasQuad(counts) && isQuadWithTwoPairs(counts) {
		return Combination{Type: FourTwoPairs, Anchor: rankWithCount(counts, 4), Size: 8}
	}
	if t, anchor := identifyAirplaneWithWings(n, counts); t != Invalid {
		return Combination{Type: t, Anchor: anchor, Size: n}
	}

	return Combination{Type: Invalid}
}

// CanBeat reports whether next beats prev when prev is on the table.
func CanBeat(prev, next []Card) bool {
	pc := IdentifyCombination(prev)
	nc := IdentifyCombination(next)
	if pc.Type == Invalid || nc.Type == Invalid {
		return false
	}
	if nc.Type == Rocket {
		return pc.Type != Rocket
	}
	if pc.Type == Rocket {
		return false
	}
	if nc.Type == Bomb {
		if pc.Type == Bomb {
			return nc.Anchor > pc.Anchor
		}
		return true
	}
	if pc.Type == Bomb {
		return false
	}
	return nc.Type == pc.Type && nc.Size == pc.Size && nc.Anchor > pc.Anchor
}

// StandardRules is the stock Fight the Landlord rule table.
type StandardRules struct{}

// Validate implements Rules.
func (StandardRules) Validate(cards []Card, toBeat []Card) error {
	combo := IdentifyCombination(cards)
	if combo.Type == Invalid {
		return fmt.Errorf("%w: no legal combination", ErrIllegalPlay)
	}
	if len(toBeat) == 0 {
		return nil
	}
	if !CanBeat(toBeat, cards) {
		return fmt.Errorf("%w: does not beat current play", ErrIllegalPlay)
	}
	return nil
}

// Compare implements Rules.
func (StandardRules) Compare(a, b []Card) (int, error) {
	if IdentifyCombination(a).Type == Invalid || IdentifyCombination(b).Type == Invalid {
		return 0, fmt.Errorf("%w: cannot compare invalid combinations", ErrIllegalPlay)
	}
	if CanBeat(b, a) {
		return 1, nil
	}
	if CanBeat(a, b) {
		return -1, nil
	}
	return 0, nil
}

// maxRunRank is the highest effective rank allowed inside sequences: the
// ace. 2s and jokers never join straights of any kind.
const maxRunRank = 12

func rankCounts(cards []Card) map[int]int {
	counts := make(map[int]int, len(cards))
	for _, c := range cards {
		counts[c.EffectiveRank()]++
	}
	return counts
}

func sortedRanks(counts map[int]int) []int {
	ranks := make([]int, 0, len(counts))
	for r := range counts {
		ranks = append(ranks, r)
	}
	sort.Ints(ranks)
	return ranks
}

// isRun reports whether every rank occurs exactly width times and the ranks
// form a consecutive run below the sequence ceiling.
func isRun(counts map[int]int, ranks []int, width int) bool {
	for _, r := range ranks {
		if counts[r] != width {
			return false
		}
	}
	return consecutiveBelowCeiling(ranks)
}

func consecutiveBelowCeiling(ranks []int) bool {
	if ranks[len(ranks)-1] > maxRunRank {
		return false
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

// hasShape reports whether the counts are exactly {a, b} across two ranks.
func hasShape(counts map[int]int, a, b int) bool {
	if len(counts) != 2 {
		return false
	}
	got := make([]int, 0, 2)
	for _, c := range counts {
		got = append(got, c)
	}
	sort.Ints(got)
	want := []int{a, b}
	sort.Ints(want)
	return got[0] == want[0] && got[1] == want[1]
}

func hasQuad(counts map[int]int) bool {
	for _, c := range counts {
		if c == 4 {
			return true
		}
	}
	return false
}

func rankWithCount(counts map[int]int, want int) int {
	best := 0
	for r, c := range counts {
		if c == want && r > best {
			best = r
		}
	}
	return best
}

func isQuadWithTwoPairs(counts map[int]int) bool {
	pairs := 0
	for _, c := range counts {
		switch c {
		case 4:
		case 2:
			pairs++
		default:
			return false
		}
	}
	return pairs == 2
}

// identifyAirplaneWithWings detects k consecutive triples carrying k single
// or k pair kickers. The triple run anchors the combination; kickers only
// need to fill the remaining card count with the matching multiplicity.
func identifyAirplaneWithWings(n int, counts map[int]int) (CombinationType, int) {
	if n < 8 {
		return Invalid, 0
	}

	var tripleRanks []int
	for r, c := range counts {
		if c >= 3 && r <= maxRunRank {
			tripleRanks = append(tripleRanks, r)
		}
	}
	sort.Ints(tripleRanks)

	// Try every consecutive run of triples, longest first.
	for length := len(tripleRanks); length >= 2; length-- {
		for start := 0; start+length <= len(tripleRanks); start++ {
			run := tripleRanks[start : start+length]
			if !consecutive(run) {
				continue
			}
			k := len(run)
			if n == 4*k && wingsAreSingles(counts, run, k) {
				return AirplaneSingles, run[k-1]
			}
			if n == 5*k && wingsArePairs(counts, run, k) {
				return AirplanePairs, run[k-1]
			}
		}
	}
	return Invalid, 0
}

func consecutive(ranks []int) bool {
	for i := 1; i < len(ranks); i++ {
		if ranks[i] != ranks[i-1]+1 {
			return false
		}
	}
	return true
}

func wingsAreSingles(counts map[int]int, run []int, k int) bool {
	leftover := leftoverCounts(counts, run)
	total := 0
	for _, c := range leftover {
		total += c
	}
	return total == k
}

func wingsArePairs(counts map[int]int, run []int, k int) bool {
	leftover := leftoverCounts(counts, run)
	pairs := 0
	for _, c := range leftover {
		if c%2 != 0 {
			return false
		}
		pairs += c / 2
	}
	return pairs == k
}

func leftoverCounts(counts map[int]int, run []int) map[int]int {
	inRun := make(map[int]bool, len(run))
	for _, r := range run {
		inRun[r] = true
	}
	leftover := make(map[int]int)
	for r, c := range counts {
		if inRun[r] {
			if c > 3 {
				leftover[r] = c - 3
			}
			continue
		}
		leftover[r] = c
	}
	return leftover
}
