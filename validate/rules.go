package validate

import (
	"fmt"
	"strings"
	"time"
)

// Business rules for tagged intervals. These are checks the schema shape
// cannot express; they run regardless of shape defects and report as
// Custom errors (or advisories for the best-effort channel check).
func (v *Validator) applyIntervalRules(c *collector, record map[string]any) {
	start, startOK := timestampField(record, "start_time")
	end, endOK := timestampField(record, "end_time")
	if startOK && endOK && end.Before(start) {
		c.fail("end_time", Custom, "end_time precedes start_time")
	}

	if raw, present := record["tags"]; present && raw != nil {
		if items, ok := anySlice(raw); ok {
			if len(items) == 0 {
				c.fail("tags", Custom, "tags must contain at least one entry")
			}
			for i, it := range items {
				m, ok := it.(map[string]any)
				if !ok {
					continue // shape defect already reported
				}
				if s, ok := m["tag"].(string); ok && strings.TrimSpace(s) == "" {
					c.fail(fmt.Sprintf("tags[%d].tag", i), Custom, "tag label must not be empty")
				}
			}
		}
	}

	v.checkChannels(c, record)
}

// checkChannels is advisory: without a registry the reference is only
// confirmed to be well-formed (by the identifier format check), and a
// miss never fails the record since the validator may not see the full
// channel set.
func (v *Validator) checkChannels(c *collector, record map[string]any) {
	if v.channels == nil {
		return
	}
	sessionID, _ := record["session_id"].(string)
	if strings.TrimSpace(sessionID) == "" {
		return
	}
	items, ok := anySlice(record["channel_ids"])
	if !ok {
		return
	}
	for i, it := range items {
		ch, ok := it.(string)
		if !ok || strings.TrimSpace(ch) == "" {
			continue
		}
		if !v.channels.Has(sessionID, ch) {
			c.advise(fmt.Sprintf("channel_ids[%d]", i), Custom,
				fmt.Sprintf("channel %q is not known to session %q", ch, sessionID))
		}
	}
}

func timestampField(record map[string]any, name string) (time.Time, bool) {
	s, isString := record[name].(string)
	if !isString {
		return time.Time{}, false
	}
	return parseTimestamp(s)
}
