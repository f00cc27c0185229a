package models

import "time"

// ExperimentReport is everything one run produces, handed to the rendering
// collaborator and persisted as JSON.
//
// Example JSON (series truncated to their first values):
//
//	{
//	  "runId": "01J9Z5X6C3M6R8Y7ZB8TQ2KQ4N",
//	  "generatedAt": "2026-10-14T09:12:03Z",
//	  "totalThroughput": [20, 40, 60, ...],
//	  "flows": [
//	    {"name": "Iperf1", "pattern": "s1-eth4", "speed": [10, 10, 10, ...]},
//	    {"name": "Iperf2", "pattern": "s1-eth5", "speed": [10, 10, 10, ...]}
//	  ],
//	  "aggregateSpeed": [20, 20, 20, ...],
//	  "delay": {
//	    "roundTripMs": [0, 0.051, 0.048, ...],
//	    "lossWindowStart": 0,
//	    "lossRate": 0.0333,
//	    "lossRates": [0.0333, 0, 0, ...]
//	  },
//	  "summary": {"aggregateMeanMbps": 19.8, "aggregatePeakMbps": 20, ...}
//	}
type ExperimentReport struct {
	RunID           string         `json:"runId"`
	GeneratedAt     time.Time      `json:"generatedAt"`
	TotalThroughput TimeSeries     `json:"totalThroughput"` // Mbit, cumulative
	Flows           []FlowSeries   `json:"flows"`
	AggregateSpeed  TimeSeries     `json:"aggregateSpeed"` // Mbit/s
	Delay           *DelayReport   `json:"delay,omitempty"`
	Summary         *SeriesSummary `json:"summary,omitempty"`
}

// FlowSeries is the realtime speed of one tracked flow, in Mbit/s.
type FlowSeries struct {
	Name    string     `json:"name"`
	Pattern string     `json:"pattern"`
	Speed   TimeSeries `json:"speed"`
}

// DelayReport holds the ping-derived series. A zero round trip means no
// reply was seen for that sequence.
type DelayReport struct {
	RoundTripMs     TimeSeries `json:"roundTripMs"`
	LossWindowStart int        `json:"lossWindowStart"`
	LossRate        float64    `json:"lossRate"`
	LossRates       TimeSeries `json:"lossRates"`
}

// SeriesSummary condenses the report into a few headline numbers.
type SeriesSummary struct {
	AggregateMeanMbps  float64 `json:"aggregateMeanMbps"`
	AggregatePeakMbps  float64 `json:"aggregatePeakMbps"`
	AggregateP95Mbps   float64 `json:"aggregateP95Mbps"`
	TotalDeliveredMbit float64 `json:"totalDeliveredMbit"`
	DelayMeanMs        float64 `json:"delayMeanMs,omitempty"`
	DelayP95Ms         float64 `json:"delayP95Ms,omitempty"`
	DelayMaxMs         float64 `json:"delayMaxMs,omitempty"`
	Replies            int     `json:"replies,omitempty"`
}
