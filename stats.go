package mrdp

import "github.com/sirupsen/logrus"

// StatsReport is one reporting window's packet accounting.
//
// Good counts admitted packets, Lost counts serial gaps inferred at
// admission time (never recoverable, MRDP has no retransmission), and
// DuplicateOrLate counts packets dropped because their serial was at or
// below the last admitted one. LossRatio is Lost divided by Good.
type StatsReport struct {
	Good            int
	Lost            int
	DuplicateOrLate int
	LossRatio       float64
}

// ReportFunc consumes periodic stats reports. It runs synchronously on
// the reading goroutine, so it must not block.
type ReportFunc func(StatsReport)

// LogReport is the default report sink. It writes the report through
// logrus with typed fields.
func LogReport(r StatsReport) {
	logrus.WithFields(logrus.Fields{
		"good":        r.Good,
		"dup_or_late": r.DuplicateOrLate,
		"lost":        r.Lost,
		"lost_ratio":  r.LossRatio,
	}).Info("MRDP packet statistics")
}
