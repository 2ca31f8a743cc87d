package jobpulse

// JobBuckets is the bucket list shared by the job_runtime and
// job_latency histograms, in seconds. The first eleven values are the
// conventional web-latency buckets; the trailing seven extend coverage
// to six hours so one bucket set serves both fast and very long jobs.
var JobBuckets = []float64{
	0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
	30, 60, 120, 300, 1800, 3600, 21600,
}
