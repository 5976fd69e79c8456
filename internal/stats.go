package internal

/*
#include <srt/srt.h>
*/
import "C"

// TraceStats is the subset of SRT_TRACEBSTATS the library exposes.
type TraceStats struct {
	MsTimeStamp int64

	PktSentTotal    int64
	PktRecvTotal    int64
	PktSndLossTotal int
	PktRcvLossTotal int
	PktRetransTotal int
	PktSndDropTotal int
	PktRcvDropTotal int
	ByteSentTotal   uint64
	ByteRecvTotal   uint64

	MbpsSendRate  float64
	MbpsRecvRate  float64
	MbpsBandwidth float64
	MsRTT         float64

	PktFlightSize   int
	ByteAvailSndBuf int
	ByteAvailRcvBuf int
}

// Bistats snapshots a socket's statistics. clear resets the accumulated
// counters after the read; instant forces instantaneous (not smoothed)
// rate values.
func Bistats(fd SocketID, clear, instant bool) (TraceStats, int) {
	var cs C.SRT_TRACEBSTATS
	rc := int(C.srt_bistats(C.SRTSOCKET(fd), &cs, b2i(clear), b2i(instant)))
	if rc != 0 {
		return TraceStats{}, rc
	}
	return TraceStats{
		MsTimeStamp:     int64(cs.msTimeStamp),
		PktSentTotal:    int64(cs.pktSentTotal),
		PktRecvTotal:    int64(cs.pktRecvTotal),
		PktSndLossTotal: int(cs.pktSndLossTotal),
		PktRcvLossTotal: int(cs.pktRcvLossTotal),
		PktRetransTotal: int(cs.pktRetransTotal),
		PktSndDropTotal: int(cs.pktSndDropTotal),
		PktRcvDropTotal: int(cs.pktRcvDropTotal),
		ByteSentTotal:   uint64(cs.byteSentTotal),
		ByteRecvTotal:   uint64(cs.byteRecvTotal),
		MbpsSendRate:    float64(cs.mbpsSendRate),
		MbpsRecvRate:    float64(cs.mbpsRecvRate),
		MbpsBandwidth:   float64(cs.mbpsBandwidth),
		MsRTT:           float64(cs.msRTT),
		PktFlightSize:   int(cs.pktFlightSize),
		ByteAvailSndBuf: int(cs.byteAvailSndBuf),
		ByteAvailRcvBuf: int(cs.byteAvailRcvBuf),
	}, 0
}

func b2i(v bool) C.int {
	if v {
		return 1
	}
	return 0
}
