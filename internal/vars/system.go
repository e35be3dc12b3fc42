package vars

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Clock is the injectable time source; production uses time.Now.
type Clock func() time.Time

var systemPattern = regexp.MustCompile(`\{\{\s*\$(\w+)\s*(?:\(([^()]*)\))?\s*\}\}`)

type generator func(r *Resolver, args []string) (string, error)

// systemRegistry is fixed: user variables can never add to or shadow it, and
// a $-prefixed placeholder that misses here stays verbatim.
var systemRegistry = map[string]generator{
	"timestamp":   genTimestamp,
	"timestampMs": genTimestampMs,
	"date":        genDate,
	"randomInt":   genRandomInt,
	"guid":        genGUID,
}

func genTimestamp(r *Resolver, _ []string) (string, error) {
	return strconv.FormatInt(r.clock().Unix(), 10), nil
}

func genTimestampMs(r *Resolver, _ []string) (string, error) {
	return strconv.FormatInt(r.clock().UnixMilli(), 10), nil
}

const dateFormatDefault = "YYYY-MM-DD"

func genDate(r *Resolver, args []string) (string, error) {
	format := dateFormatDefault
	if len(args) > 0 && args[0] != "" {
		format = args[0]
	}
	now := r.clock()
	replacer := strings.NewReplacer(
		"YYYY", fmt.Sprintf("%04d", now.Year()),
		"MM", fmt.Sprintf("%02d", int(now.Month())),
		"DD", fmt.Sprintf("%02d", now.Day()),
		"HH", fmt.Sprintf("%02d", now.Hour()),
		"mm", fmt.Sprintf("%02d", now.Minute()),
		"ss", fmt.Sprintf("%02d", now.Second()),
	)
	return replacer.Replace(format), nil
}

const (
	randomIntMinDefault = 1
	randomIntMaxDefault = 100
)

func genRandomInt(r *Resolver, args []string) (string, error) {
	min := int64(randomIntMinDefault)
	max := int64(randomIntMaxDefault)
	var err error
	if len(args) > 0 && args[0] != "" {
		if min, err = strconv.ParseInt(args[0], 10, 64); err != nil {
			return "", err
		}
	}
	if len(args) > 1 && args[1] != "" {
		if max, err = strconv.ParseInt(args[1], 10, 64); err != nil {
			return "", err
		}
	}
	if min > max {
		return "", fmt.Errorf("randomInt: min %d greater than max %d", min, max)
	}
	n, err := rand.Int(r.entropy, big.NewInt(max-min+1))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(min+n.Int64(), 10), nil
}

func genGUID(r *Resolver, _ []string) (string, error) {
	id, err := uuid.NewRandomFromReader(r.entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
