package vk

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

func printTier(json *jwriter.ObjectState, name string, entries []entry) {
	tier := json.Name(name).Object()
	defer tier.End()

	resolved := 0
	for _, e := range entries {
		if e.resolved() {
			resolved++
		}
	}
	tier.Name("Total").Int(len(entries))
	tier.Name("Resolved").Int(resolved)

	missing := tier.Name("Missing").Array()
	for _, e := range entries {
		if e.resolved() {
			continue
		}
		item := missing.Object()
		item.Name("Name").String(e.name)
		if e.extension != "" {
			item.Name("Extension").String(e.extension)
		}
		item.End()
	}
	missing.End()
}

// BuildStatsString renders which global and instance entry points were resolved as JSON
func (d *InstanceDispatch) BuildStatsString() string {
	writer := jwriter.NewWriter()
	json := writer.Object()
	printTier(&json, "Global", globalEntries(d))
	printTier(&json, "Instance", instanceEntries(d))
	json.End()
	return string(writer.Bytes())
}

// BuildStatsString renders which entry points were resolved in all three tiers as JSON
func (d *DeviceDispatch) BuildStatsString() string {
	writer := jwriter.NewWriter()
	json := writer.Object()
	printTier(&json, "Global", globalEntries(&d.InstanceDispatch))
	printTier(&json, "Instance", instanceEntries(&d.InstanceDispatch))
	printTier(&json, "Device", deviceEntries(d))
	json.End()
	return string(writer.Bytes())
}
