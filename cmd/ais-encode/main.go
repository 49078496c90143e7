// Command ais-encode turns line-delimited JSON AIS message records
// into NMEA AIVDM/AIVDO sentences.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"reflect"

	"aisdeck/aistype"
	"aisdeck/encode"
)

func main() {
	talker := flag.String("talker", "AIVDM", "talker id: AIVDM or AIVDO")
	channel := flag.String("radio", "A", "radio channel: A or B")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	seq := 0
	seqCounter := func() int {
		seq++
		return seq
	}

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var peek struct {
			MsgType int `json:"msg_type"`
			Type    int `json:"type"`
		}
		if err := json.Unmarshal(line, &peek); err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode: could not parse json: %s\n", err)
			continue
		}
		msgType := peek.MsgType
		if msgType == 0 {
			msgType = peek.Type
		}

		msg, err := unmarshalMessage(msgType, line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode: %s\n", err)
			continue
		}

		sentences, err := encode.ToSentences(msg, *talker, "VDM", *channel, seqCounter)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode: %s\n", err)
			continue
		}
		for _, s := range sentences {
			fmt.Println(s)
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		log.Fatal(err)
	}
}

func unmarshalMessage(msgType int, line []byte) (aistype.Message, error) {
	var msg aistype.Message
	switch msgType {
	case 1, 2, 3:
		msg = &aistype.PositionReportA{}
	case 4, 11:
		msg = &aistype.BaseStationReport{}
	case 5:
		msg = &aistype.StaticVoyageData{}
	case 6:
		msg = &aistype.BinaryAddressed{}
	case 7, 13:
		msg = &aistype.BinaryAcknowledge{}
	case 8:
		msg = &aistype.BinaryBroadcast{}
	case 9:
		msg = &aistype.SARAircraftPosition{}
	case 10:
		msg = &aistype.UTCDateInquiry{}
	case 12, 14:
		msg = &aistype.SafetyRelatedMessage{}
	case 15:
		msg = &aistype.Interrogation{}
	case 16:
		msg = &aistype.AssignmentModeCommand{}
	case 17:
		msg = &aistype.DGNSSBroadcast{}
	case 18:
		msg = &aistype.PositionReportB{}
	case 19:
		msg = &aistype.PositionReportBExtended{}
	case 20:
		msg = &aistype.DataLinkManagement{}
	case 21:
		msg = &aistype.AidToNavigationReport{}
	case 22:
		msg = &aistype.ChannelManagement{}
	case 23:
		msg = &aistype.GroupAssignmentCommand{}
	case 24:
		msg = &aistype.StaticDataReport{}
	case 25:
		msg = &aistype.BinarySingleSlotMessage{}
	case 26:
		msg = &aistype.BinaryMultiSlotMessage{}
	case 27:
		msg = &aistype.LongRangeBroadcast{}
	default:
		return nil, fmt.Errorf("unknown msg_type %d", msgType)
	}

	if err := json.Unmarshal(line, msg); err != nil {
		return nil, err
	}
	// JSON records may carry the type under "msg_type" rather than
	// "type" (both conventions appear in AIS tooling); pin the header
	// field explicitly since json.Unmarshal only sees one key or the
	// other.
	setHeaderType(msg, msgType)
	return msg, nil
}

func setHeaderType(msg aistype.Message, msgType int) {
	v := reflect.ValueOf(msg).Elem().FieldByName("Header").FieldByName("Type")
	if v.IsValid() && v.CanSet() {
		v.SetInt(int64(msgType))
	}
}
