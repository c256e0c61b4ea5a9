// Package suggest discovers candidate rules from log lines that no
// existing rule classifies. Unmatched lines are clustered with the Drain
// algorithm; recurring templates become candidate rule suggestions the
// user can promote into the rule file.
package suggest

import (
	"sort"
	"sync"

	"github.com/go-errors/errors"
	"github.com/google/uuid"
	"github.com/jaeyo/go-drain3/pkg/drain3"
)

// Candidate is a recurring template discovered among unmatched lines.
type Candidate struct {
	ID       uuid.UUID
	Template string
	Count    int
}

// Discoverer clusters unmatched log lines online.
type Discoverer struct {
	mu    sync.Mutex
	drain *drain3.Drain
	// clusterUUIDs pins a stable UUID to each Drain cluster so candidates
	// keep their identity across Candidates calls.
	clusterUUIDs map[int64]uuid.UUID
}

// NewDiscoverer creates a Discoverer with default Drain parameters.
func NewDiscoverer() (*Discoverer, error) {
	d, err := drain3.NewDrain(
		drain3.WithDepth(4),
		drain3.WithSimTh(0.4),
		drain3.WithExtraDelimiter([]string{"|", "=", ","}),
	)
	if err != nil {
		return nil, errors.Errorf("create drain: %w", err)
	}
	return &Discoverer{
		drain:        d,
		clusterUUIDs: make(map[int64]uuid.UUID),
	}, nil
}

// Feed processes a batch of unmatched lines through the Drain algorithm.
func (d *Discoverer) Feed(lines []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, line := range lines {
		cluster, _, err := d.drain.AddLogMessage(line)
		if err != nil {
			return errors.Errorf("drain add: %w", err)
		}
		if cluster == nil {
			continue
		}
		if _, ok := d.clusterUUIDs[cluster.ClusterId]; !ok {
			d.clusterUUIDs[cluster.ClusterId] = uuid.New()
		}
	}
	return nil
}

// Candidates returns templates seen at least minCount times, largest
// clusters first, templates ascending on ties. A cluster with a single
// line is just that line verbatim, not a generalization, so minCount
// below 2 is raised to 2.
func (d *Discoverer) Candidates(minCount int) ([]Candidate, error) {
	if minCount < 2 {
		minCount = 2
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	clusters := d.drain.GetClusters()
	out := make([]Candidate, 0, len(clusters))
	for _, c := range clusters {
		if int(c.Size) < minCount {
			continue
		}
		id, ok := d.clusterUUIDs[c.ClusterId]
		if !ok {
			continue
		}
		out = append(out, Candidate{
			ID:       id,
			Template: c.GetTemplate(),
			Count:    int(c.Size),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Template < out[j].Template
	})
	return out, nil
}
