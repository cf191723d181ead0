package service

import "time"

// MetricsRecorder receives business measurements from the use cases.
type MetricsRecorder interface {
	// IndexRebuilt records a search index rebuild over the given number of subscribers.
	IndexRebuilt(subscribers int, took time.Duration)

	// BeaconRecorded counts a stored beacon coordinate by source ("mqtt", "http").
	BeaconRecorded(source string)

	// EventPublished counts a task event publish attempt.
	EventPublished(eventType TaskEventType, err error)
}
