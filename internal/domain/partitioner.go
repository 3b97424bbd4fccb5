package domain

import (
	"sort"

	m "wordguess.dev/pkg/wordguess/internal/model"
)

// PartitionWords groups words by the feedback guess would receive if each of
// them were the target. Words keep their input order inside a group; groups
// are sorted by descending size, ties by first encounter.
func PartitionWords(guess m.Word, words []m.Word) m.Partition {
	return partitionLocated(guess, words, locateAll(words))
}

func partitionLocated(guess m.Word, words []m.Word, located []Locations) m.Partition {
	guessLocations := Locate(guess)
	length := guess.Len()

	index := make(map[m.Pattern]int)
	partition := m.Partition{}

	for i, word := range words {
		pattern := Encode(guessLocations, located[i], length)

		slot, ok := index[pattern]
		if !ok {
			slot = len(partition)
			index[pattern] = slot
			partition = append(partition, m.Group{Pattern: pattern})
		}

		partition[slot].Words = append(partition[slot].Words, word)
	}

	sort.SliceStable(partition, func(i, j int) bool {
		return len(partition[i].Words) > len(partition[j].Words)
	})

	return partition
}

// countPatterns is the counting-only form of PartitionWords used while ranking.
func countPatterns(guess m.Word, located []Locations) map[m.Pattern]int {
	guessLocations := Locate(guess)
	length := guess.Len()
	counts := make(map[m.Pattern]int)

	for _, target := range located {
		counts[Encode(guessLocations, target, length)]++
	}

	return counts
}

func locateAll(words []m.Word) []Locations {
	located := make([]Locations, len(words))
	for i, word := range words {
		located[i] = Locate(word)
	}

	return located
}
