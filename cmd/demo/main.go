// Command demo exercises the counting bloom filter end to end: it times bulk
// adds and lookups over random UUID keys, compares the measured false
// positive rate against the analytic estimate, then removes half the items
// and reports how many of them still test present.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/elimelt/cbloom"
	"github.com/google/uuid"
)

const (
	filterSize   = 1_000_000
	numHashFuncs = 5
	numItems     = 100_000
	numLookups   = 1_000_000
)

func main() {
	filter, err := cbloom.New(filterSize, numHashFuncs)
	if err != nil {
		log.Fatal(err)
	}

	added := make(map[string]struct{}, numItems)

	start := time.Now()
	for n := 0; n < numItems; n++ {
		item := uuid.NewString()
		filter.AddString(item)
		added[item] = struct{}{}
	}
	fmt.Printf("Time to add %d items: %.2f ms\n", numItems, ms(time.Since(start)))

	var falsePositives int
	start = time.Now()
	for n := 0; n < numLookups; n++ {
		probe := uuid.NewString()
		if filter.TestString(probe) {
			if _, ok := added[probe]; !ok {
				falsePositives++
			}
		}
	}
	fmt.Printf("Time to perform %d lookups: %.2f ms\n", numLookups, ms(time.Since(start)))

	actualRate := float64(falsePositives) / float64(numLookups)
	estimatedRate := cbloom.EstimateFalsePositiveRate(filterSize, numHashFuncs, numItems)
	fmt.Printf("False positive rate - actual: %.6f, estimated: %.6f\n", actualRate, estimatedRate)

	removed := make([]string, 0, numItems/2)
	start = time.Now()
	for item := range added {
		filter.RemoveString(item)
		removed = append(removed, item)
		if len(removed) == numItems/2 {
			break
		}
	}
	fmt.Printf("Time to remove %d items: %.2f ms\n", len(removed), ms(time.Since(start)))

	// Removed items should test absent; any that still test present are
	// colliding with counters held up by the remaining half.
	var stillPresent int
	for _, item := range removed {
		if filter.TestString(item) {
			stillPresent++
		}
	}
	fmt.Printf("Removed items still reported present: %d (%.6f%%)\n",
		stillPresent, float64(stillPresent)/float64(len(removed))*100)
}

func ms(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}
