package nmea

import (
	"strconv"
	"strings"

	"aisdeck/aiserr"
)

// Gatehouse is a parsed $PGHP,... companion sentence. It carries no AIS
// payload of its own and associates with the next AIS sentence consumed
// from the same source.
type Gatehouse struct {
	Year, Month, Day       int
	Hour, Minute, Second   int
	Milliseconds           int
	PSS                    string
	Region                 string
	Country                string
	OnlineData             string
}

// IsGatehouse reports whether line looks like a $PGHP sentence, without
// fully parsing or validating it.
func IsGatehouse(line []byte) bool {
	return strings.HasPrefix(string(line), "$PGHP,")
}

// ParseGatehouse parses a raw $PGHP,... line (optionally CRLF/LF
// terminated). The checksum is validated the same way as an AIS sentence.
func ParseGatehouse(line []byte, opts Options) (*Gatehouse, error) {
	line = stripLineEnding(line)
	if len(line) == 0 || line[0] != '$' {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "gatehouse sentence missing '$' delimiter")
	}
	star := strings.LastIndexByte(string(line), '*')
	if star < 0 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "gatehouse sentence missing checksum delimiter")
	}
	body := line[1:star]
	checksumHex := line[star+1:]
	if len(checksumHex) < 2 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "truncated gatehouse checksum")
	}
	cs, err := strconv.ParseUint(string(checksumHex[:2]), 16, 8)
	if err != nil {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "malformed gatehouse checksum")
	}
	computed := XORChecksum(body)
	if uint8(cs) != computed && opts.ErrorIfChecksumInvalid {
		return nil, aiserr.New(aiserr.KindInvalidChecksum, "gatehouse: expected %02X, computed %02X", cs, computed)
	}

	fields := strings.Split(string(body), ",")
	// $PGHP,<msgtype>,<year>,<month>,<day>,<hour>,<min>,<sec>,<ms>,<pss>,<region>,<country>,<online>
	if len(fields) < 12 {
		return nil, aiserr.New(aiserr.KindInvalidNMEAMessage, "gatehouse sentence has %d fields, want >= 12", len(fields))
	}

	gh := &Gatehouse{}
	gh.Year = atoiOr(fields[1], 0)
	gh.Month = atoiOr(fields[2], 0)
	gh.Day = atoiOr(fields[3], 0)
	gh.Hour = atoiOr(fields[4], 0)
	gh.Minute = atoiOr(fields[5], 0)
	gh.Second = atoiOr(fields[6], 0)
	gh.Milliseconds = atoiOr(fields[7], 0)
	gh.PSS = fields[8]
	gh.Region = fields[9]
	gh.Country = fields[10]
	gh.OnlineData = fields[11]
	return gh, nil
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
