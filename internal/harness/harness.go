package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/nordmindi/kinship-atlas-sub002/internal/engine"
	"github.com/nordmindi/kinship-atlas-sub002/internal/kin"
	"github.com/nordmindi/kinship-atlas-sub002/internal/store"
	"github.com/nordmindi/kinship-atlas-sub002/internal/testutil"
)

// scenarioEpoch anchors every scenario's timeline.
var scenarioEpoch = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every expect clause matched.
	Pass bool `json:"pass"`

	// Errors lists expectation mismatches. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Snapshot is the deterministic post-run state used for golden
	// comparison.
	Snapshot Snapshot `json:"snapshot"`
}

// Snapshot captures the observable state after a scenario run: every
// write outcome, every person's perspective, and the display graph.
type Snapshot struct {
	Scenario     string              `json:"scenario"`
	Writes       []WriteOutcome      `json:"writes,omitempty"`
	Perspectives []PersonPerspective `json:"perspectives"`
	Graph        []kin.DisplayEdge   `json:"graph"`
}

// WriteOutcome records how one write step resolved.
type WriteOutcome struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Kind       string `json:"kind"`
	Mode       string `json:"mode"`
	EdgeID     string `json:"edge_id,omitempty"`
	Created    bool   `json:"created"`
	Corrected  bool   `json:"corrected"`
	ActualKind string `json:"actual_kind,omitempty"`
	Error      string `json:"error,omitempty"`
}

// PersonPerspective is one person's derived relation entries, in the
// engine's deterministic order.
type PersonPerspective struct {
	PersonID string                 `json:"person_id"`
	Entries  []kin.PerspectiveEntry `json:"entries"`
}

// seqGenerator issues edge IDs edge-001, edge-002, ... so scenario
// snapshots are stable without pre-counting the writes.
type seqGenerator struct {
	n int
}

func (g *seqGenerator) NewEdgeID() string {
	g.n++
	return fmt.Sprintf("edge-%03d", g.n)
}

// Run executes a scenario against a fresh in-memory store and returns
// the result. Infrastructure failures (store errors, bad fixtures)
// return an error; expectation mismatches are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	ctx := context.Background()

	s, err := store.Open(":memory:")
	if err != nil {
		return nil, fmt.Errorf("open scenario store: %w", err)
	}
	defer s.Close()

	if err := seedPeople(ctx, s, scenario.People); err != nil {
		return nil, err
	}
	if err := seedRawEdges(ctx, s, scenario.RawEdges); err != nil {
		return nil, err
	}

	// Raw edges consumed the first len(RawEdges) ticks of the timeline;
	// writes continue after them so store ordering matches seed order.
	clock := testutil.NewStepClock(
		scenarioEpoch.Add(time.Duration(len(scenario.RawEdges))*time.Second),
		time.Second,
	)
	eng := engine.New(s, s,
		engine.WithIDGenerator(&seqGenerator{}),
		engine.WithClock(clock.Now),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	result := &Result{Pass: true}
	result.Snapshot.Scenario = scenario.Name

	for i, step := range scenario.Writes {
		outcome := runWrite(ctx, eng, step)
		result.Snapshot.Writes = append(result.Snapshot.Writes, outcome)
		checkExpect(result, i, step.Expect, outcome)
	}

	personIDs := make([]string, len(scenario.People))
	for i, p := range scenario.People {
		personIDs[i] = p.ID
	}

	result.Snapshot.Perspectives = make([]PersonPerspective, 0, len(personIDs))
	for _, id := range personIDs {
		entries, err := eng.Perspective(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("perspective of %s: %w", id, err)
		}
		result.Snapshot.Perspectives = append(result.Snapshot.Perspectives, PersonPerspective{
			PersonID: id,
			Entries:  entries,
		})
	}

	graph, err := eng.BuildDisplayGraph(ctx, personIDs)
	if err != nil {
		return nil, fmt.Errorf("build display graph: %w", err)
	}
	result.Snapshot.Graph = graph

	return result, nil
}

func seedPeople(ctx context.Context, s *store.Store, people []PersonFixture) error {
	for _, p := range people {
		birth, err := kin.ParseDate(p.Birth)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		death, err := kin.ParseDate(p.Death)
		if err != nil {
			return fmt.Errorf("person %s: %w", p.ID, err)
		}
		if err := s.PutPerson(ctx, kin.Person{
			ID:        p.ID,
			Name:      p.Name,
			BirthDate: birth,
			DeathDate: death,
		}); err != nil {
			return fmt.Errorf("seed person %s: %w", p.ID, err)
		}
	}
	return nil
}

func seedRawEdges(ctx context.Context, s *store.Store, edges []EdgeFixture) error {
	for i, e := range edges {
		if _, err := s.InsertEdge(ctx, kin.RelationEdge{
			ID:        e.ID,
			FromID:    e.From,
			ToID:      e.To,
			Kind:      kin.Kind(e.Kind),
			CreatedAt: scenarioEpoch.Add(time.Duration(i) * time.Second),
		}); err != nil {
			return fmt.Errorf("seed raw edge %s: %w", e.ID, err)
		}
	}
	return nil
}

func runWrite(ctx context.Context, eng *engine.Engine, step WriteStep) WriteOutcome {
	mode := engine.Mode(step.Mode)
	if step.Mode == "" {
		mode = engine.ModeStrict
	}

	outcome := WriteOutcome{
		From: step.From,
		To:   step.To,
		Kind: step.Kind,
		Mode: string(mode),
	}

	res, err := eng.CreateRelationship(ctx, step.From, step.To, kin.Kind(step.Kind), mode)
	if err != nil {
		outcome.Error = errorCode(err)
		return outcome
	}

	outcome.EdgeID = res.EdgeID
	outcome.Created = res.Created
	outcome.Corrected = res.Corrected
	outcome.ActualKind = string(res.ActualKind)
	return outcome
}

// errorCode maps an engine error to its stable snapshot code.
func errorCode(err error) string {
	var ve *engine.ValidationError
	if errors.As(err, &ve) {
		return string(ve.Code)
	}
	var ce *engine.ConflictingEdgeError
	if errors.As(err, &ce) {
		return "CONFLICTING_EDGE"
	}
	return err.Error()
}

// checkExpect validates an expect clause against the actual outcome.
func checkExpect(result *Result, index int, expect *ExpectClause, outcome WriteOutcome) {
	if expect == nil {
		if outcome.Error != "" {
			result.addError(fmt.Sprintf("writes[%d]: unexpected error %s", index, outcome.Error))
		}
		return
	}

	if expect.Error != outcome.Error {
		result.addError(fmt.Sprintf("writes[%d]: expected error %q, got %q", index, expect.Error, outcome.Error))
	}
	if expect.Created != nil && *expect.Created != outcome.Created {
		result.addError(fmt.Sprintf("writes[%d]: expected created=%t, got %t", index, *expect.Created, outcome.Created))
	}
	if expect.Corrected != nil && *expect.Corrected != outcome.Corrected {
		result.addError(fmt.Sprintf("writes[%d]: expected corrected=%t, got %t", index, *expect.Corrected, outcome.Corrected))
	}
	if expect.ActualKind != "" && expect.ActualKind != outcome.ActualKind {
		result.addError(fmt.Sprintf("writes[%d]: expected actual kind %q, got %q", index, expect.ActualKind, outcome.ActualKind))
	}
}

func (r *Result) addError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}
