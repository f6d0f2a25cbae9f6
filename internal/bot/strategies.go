package bot

import (
	"github.com/nhywieza/fight-the-landlord/internal/domain"
)

// rankGroup collects the held cards of one effective rank.
type rankGroup struct {
	rank  int
	cards []domain.Card
}

// groupHand splits a hand into rank groups, lowest rank first.
func groupHand(hand *domain.Deck) []rankGroup {
	cards := hand.Cards() // canonical order: rank descending
	var groups []rankGroup
	for i := len(cards) - 1; i >= 0; i-- {
		c := cards[i]
		rank := c.EffectiveRank()
		if len(groups) == 0 || groups[len(groups)-1].rank != rank {
			groups = append(groups, rankGroup{rank: rank})
		}
		last := &groups[len(groups)-1]
		last.cards = append(last.cards, c)
	}
	return groups
}

// handStrength scores bidding material: jokers, 2s and bombs.
func handStrength(hand *domain.Deck) int {
	score := 0
	jokers := 0
	for _, g := range groupHand(hand) {
		switch {
		case g.rank >= domain.NumberSmallJoker:
			jokers++
			score++
		case g.rank == 13: // the 2s
			score += len(g.cards)
		}
		if len(g.cards) == 4 {
			score += 2
		}
	}
	if jokers == 2 {
		score += 2 // rocket in hand
	}
	return score
}

// CautiousBot bids only on strong hands, leads its lowest single and never
// spends bombs unless forced to answer one.
type CautiousBot struct{}

func (CautiousBot) ShouldCall(hand *domain.Deck) bool {
	return handStrength(hand) >= 4
}

func (CautiousBot) CalculateMove(hand *domain.Deck, toBeat *domain.Play) (Move, error) {
	groups := groupHand(hand)
	if len(groups) == 0 {
		return Move{Pass: true}, nil
	}
	if toBeat == nil {
		return Move{Cards: groups[0].cards[:1]}, nil
	}
	cards := respond(groups, toBeat.Cards, false)
	if cards == nil {
		return Move{Pass: true}, nil
	}
	return Move{Cards: cards}, nil
}

// GreedyBot bids readily, sheds its whole lowest group when leading and
// chops with bombs whenever nothing cheaper answers.
type GreedyBot struct{}

func (GreedyBot) ShouldCall(hand *domain.Deck) bool {
	return handStrength(hand) >= 2
}

func (GreedyBot) CalculateMove(hand *domain.Deck, toBeat *domain.Play) (Move, error) {
	groups := groupHand(hand)
	if len(groups) == 0 {
		return Move{Pass: true}, nil
	}
	if toBeat == nil {
		lead := groups[0].cards
		if len(lead) == 4 {
			// A bomb is worth more than a cheap lead.
			lead = lead[:1]
		}
		return Move{Cards: lead}, nil
	}
	cards := respond(groups, toBeat.Cards, true)
	if cards == nil {
		return Move{Pass: true}, nil
	}
	return Move{Cards: cards}, nil
}

// respond finds the cheapest legal answer to toBeat, or nil to pass. When
// useBomb is set, bombs and the rocket answer otherwise unbeatable plays.
func respond(groups []rankGroup, toBeat []domain.Card, useBomb bool) []domain.Card {
	combo := domain.IdentifyCombination(toBeat)
	var cards []domain.Card

	switch combo.Type {
	case domain.Single:
		cards = sameRankAbove(groups, 1, combo.Anchor)
	case domain.Pair:
		cards = sameRankAbove(groups, 2, combo.Anchor)
	case domain.Triple:
		cards = sameRankAbove(groups, 3, combo.Anchor)
	case domain.TripleSingle:
		cards = runWithKickers(groups, 3, 1, combo.Anchor, 1, 1)
	case domain.TriplePair:
		cards = runWithKickers(groups, 3, 1, combo.Anchor, 1, 2)
	case domain.Straight:
		cards = runAbove(groups, 1, combo.Size, combo.Anchor)
	case domain.PairStraight:
		cards = runAbove(groups, 2, combo.Size/2, combo.Anchor)
	case domain.Airplane:
		cards = runAbove(groups, 3, combo.Size/3, combo.Anchor)
	case domain.AirplaneSingles:
		cards = runWithKickers(groups, 3, combo.Size/4, combo.Anchor, combo.Size/4, 1)
	case domain.AirplanePairs:
		cards = runWithKickers(groups, 3, combo.Size/5, combo.Anchor, combo.Size/5, 2)
	case domain.FourTwoSingles:
		cards = runWithKickers(groups, 4, 1, combo.Anchor, 2, 1)
	case domain.FourTwoPairs:
		cards = runWithKickers(groups, 4, 1, combo.Anchor, 2, 2)
	case domain.Bomb:
		cards = sameRankAbove(groups, 4, combo.Anchor)
	case domain.Rocket:
		return nil
	default:
		return nil
	}

	if cards != nil {
		return cards
	}
	if !useBomb || combo.Type == domain.Bomb {
		// Bomb-vs-bomb was already tried above; rocket still applies.
		if useBomb {
			return rocket(groups)
		}
		return nil
	}
	if bomb := lowestBomb(groups); bomb != nil {
		return bomb
	}
	return rocket(groups)
}

// sameRankAbove returns width cards of the lowest rank above anchor with at
// least width copies, or nil.
func sameRankAbove(groups []rankGroup, width, anchor int) []domain.Card {
	for _, g := range groups {
		if g.rank > anchor && len(g.cards) >= width {
			return g.cards[:width]
		}
	}
	return nil
}

// sequenceCeiling is the highest effective rank allowed in multi-rank runs.
const sequenceCeiling = 12

// runAbove returns the lowest run of length consecutive ranks, each with at
// least width copies, whose top rank beats anchor, or nil.
func runAbove(groups []rankGroup, width, length, anchor int) []domain.Card {
	ranks := findRun(groups, width, length, anchor)
	if ranks == nil {
		return nil
	}
	var cards []domain.Card
	for _, r := range ranks {
		cards = append(cards, takeRank(groups, r, width)...)
	}
	return cards
}

// runWithKickers returns a run (length ranks of width copies) beating anchor
// plus kickerCount kickers of kickerWidth cards each, or nil.
func runWithKickers(groups []rankGroup, width, length, anchor, kickerCount, kickerWidth int) []domain.Card {
	ranks := findRun(groups, width, length, anchor)
	if ranks == nil {
		return nil
	}
	inRun := make(map[int]bool, len(ranks))
	var cards []domain.Card
	for _, r := range ranks {
		inRun[r] = true
		cards = append(cards, takeRank(groups, r, width)...)
	}

	kickers := 0
	for _, g := range groups {
		if kickers == kickerCount {
			break
		}
		if inRun[g.rank] || len(g.cards) < kickerWidth || len(g.cards) == 4 {
			continue // keep bombs whole
		}
		cards = append(cards, g.cards[:kickerWidth]...)
		kickers++
	}
	if kickers < kickerCount {
		return nil
	}
	return cards
}

// findRun locates the lowest run of length consecutive ranks with at least
// width copies each whose top rank beats anchor. Runs spanning more than one
// rank stay below the sequence ceiling.
func findRun(groups []rankGroup, width, length, anchor int) []int {
	available := make(map[int]bool, len(groups))
	for _, g := range groups {
		if len(g.cards) >= width {
			available[g.rank] = true
		}
	}

	top := 13
	if length > 1 {
		top = sequenceCeiling
	}
	for end := anchor + 1; end <= top; end++ {
		ok := true
		for r := end - length + 1; r <= end; r++ {
			if r < 1 || !available[r] {
				ok = false
				break
			}
		}
		if ok {
			ranks := make([]int, 0, length)
			for r := end - length + 1; r <= end; r++ {
				ranks = append(ranks, r)
			}
			return ranks
		}
	}
	return nil
}

func takeRank(groups []rankGroup, rank, n int) []domain.Card {
	for _, g := range groups {
		if g.rank == rank {
			return g.cards[:n]
		}
	}
	return nil
}

func lowestBomb(groups []rankGroup) []domain.Card {
	for _, g := range groups {
		if len(g.cards) == 4 {
			return g.cards
		}
	}
	return nil
}

func rocket(groups []rankGroup) []domain.Card {
	var jokers []domain.Card
	for _, g := range groups {
		if g.rank >= domain.NumberSmallJoker {
			jokers = append(jokers, g.cards...)
		}
	}
	if len(jokers) == 2 {
		return jokers
	}
	return nil
}
