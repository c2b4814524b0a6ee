package hepcalc

import (
	"sort"
	"sync"

	"go.uber.org/zap"
)

type Stage uint8

const (
	StageTransform Stage = iota // a, b, c combined into t
	StageScale                  // logSoft · logHard
	StageCombine                // b += c
	StageDot                    // a · (b+c)
	StageAnswer                 // final product
)

var stageNames = [...]string{"transform", "scale", "combine", "dot", "answer"}

func (s Stage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "unknown"
}

type StageLog struct {
	Event  string
	Stage  Stage
	Value  Real // scalar output of the stage, or M2 for vector stages
	Finite bool
}

// StageLogCache collects stage records of a single run. Records are keyed
// by the event's position in the run, so equal names never merge.
type StageLogCache struct {
	mu     sync.Mutex
	stages map[int][]StageLog
}

func newStageLogCache() *StageLogCache {
	return &StageLogCache{stages: make(map[int][]StageLog)}
}

func (c *StageLogCache) logStage(idx int, event string, stage Stage, value Real) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stages[idx] = append(c.stages[idx], StageLog{
		Event:  event,
		Stage:  stage,
		Value:  value,
		Finite: isFinite(value),
	})
}

// logResult records every stage of an already calculated result.
func (c *StageLogCache) logResult(idx int, r Result) {
	c.logStage(idx, r.Name, StageTransform, r.Transformed.M2())
	c.logStage(idx, r.Name, StageScale, r.LogProduct)
	c.logStage(idx, r.Name, StageCombine, r.Inputs[1].Add(r.Inputs[2]).M2())
	c.logStage(idx, r.Name, StageDot, r.Dot)
	c.logStage(idx, r.Name, StageAnswer, r.Answer)
}

func (c *StageLogCache) records(idx int) []StageLog {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]StageLog(nil), c.stages[idx]...)
}

// firstNonFinite returns the earliest stage of the event that went non-finite.
func (c *StageLogCache) firstNonFinite(idx int) (Stage, bool) {
	for _, l := range c.records(idx) {
		if !l.Finite {
			return l.Stage, true
		}
	}
	return 0, false
}

func (c *StageLogCache) stats(logger *zap.Logger) {
	c.mu.Lock()
	idxs := make([]int, 0, len(c.stages))
	for k := range c.stages {
		idxs = append(idxs, k)
	}
	c.mu.Unlock()
	sort.Ints(idxs)

	for _, idx := range idxs {
		recs := c.records(idx)
		if len(recs) == 0 {
			continue
		}
		fields := []zap.Field{zap.Int("index", idx), zap.String("event", recs[0].Event), zap.Int("records", len(recs))}
		if s, ok := c.firstNonFinite(idx); ok {
			fields = append(fields, zap.Stringer("nonFiniteFrom", s))
		}
		logger.Debug("stage stats", fields...)
	}
}
