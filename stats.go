package srt

import "github.com/lumastream/srt/internal"

// Stats is a point-in-time snapshot of a socket's transport counters:
// cumulative packet and byte totals, loss, retransmissions and drops on
// both directions, plus smoothed rate, bandwidth and RTT estimates.
type Stats internal.TraceStats

// Stats snapshots the socket's statistics. With clear the cumulative
// counters are reset after the read.
func (s *Socket) Stats(clear bool) (Stats, error) {
	ts, rc := internal.Bistats(s.fd, clear, false)
	return Check(Stats(ts), rc)
}
