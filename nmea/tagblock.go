package nmea

import (
	"strconv"
	"strings"

	"aisdeck/aiserr"
)

// GroupID is the parsed form of a tag block's "g" key: n/N/id.
type GroupID struct {
	SentenceNum int
	Total       int
	ID          string
}

// TagBlock is a parsed \k:v,...*CS\ prefix. Unrecognized keys are
// ignored
type TagBlock struct {
	UnixSeconds     int64
	Destination     string
	LineCount       int
	RelativeTime    int64
	Source          string
	Text            string
	Group           *GroupID
	HasUnixSeconds  bool
	HasLineCount    bool
	HasRelativeTime bool
}

// parseTagBlock parses the content between the opening '\' (exclusive)
// and closing '\' (exclusive), which itself ends with *CS.
func parseTagBlock(content []byte) (*TagBlock, error) {
	star := strings.LastIndexByte(string(content), '*')
	if star < 0 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "tag block missing checksum delimiter")
	}
	body := content[:star]
	checksumHex := content[star+1:]
	cs, err := strconv.ParseUint(string(checksumHex), 16, 8)
	if err != nil {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "malformed tag block checksum %q", checksumHex)
	}
	computed := XORChecksum(body)
	if uint8(cs) != computed {
		return nil, aiserr.New(aiserr.KindInvalidChecksum,
			"tag block: expected %02X, computed %02X", cs, computed)
	}

	tb := &TagBlock{}
	for _, kv := range strings.Split(string(body), ",") {
		if kv == "" {
			continue
		}
		parts := strings.SplitN(kv, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key, val := parts[0], parts[1]
		switch key {
		case "c":
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				tb.UnixSeconds = n
				tb.HasUnixSeconds = true
			}
		case "d":
			tb.Destination = val
		case "n":
			if n, err := strconv.Atoi(val); err == nil {
				tb.LineCount = n
				tb.HasLineCount = true
			}
		case "r":
			if n, err := strconv.ParseInt(val, 10, 64); err == nil {
				tb.RelativeTime = n
				tb.HasRelativeTime = true
			}
		case "s":
			tb.Source = val
		case "t":
			tb.Text = val
		case "g":
			if g := parseGroupID(val); g != nil {
				tb.Group = g
			}
		}
	}
	return tb, nil
}

func parseGroupID(val string) *GroupID {
	parts := strings.Split(val, "/")
	if len(parts) != 3 {
		return nil
	}
	n, err1 := strconv.Atoi(parts[0])
	total, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return nil
	}
	return &GroupID{SentenceNum: n, Total: total, ID: parts[2]}
}
