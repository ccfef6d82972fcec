package adapter

import (
	"testing"

	"github.com/hyp3rd/flaglog"
)

type benchWriter struct{}

func (benchWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func BenchmarkAdapterEmit(b *testing.B) {
	testCases := []struct {
		name    string
		useHeap bool
		color   flaglog.ColorMode
		flag    flaglog.Flag
	}{
		{name: "Stack/TagColor", color: flaglog.ColorTag, flag: flaglog.Info},
		{name: "Stack/NoColor", color: flaglog.ColorDisabled, flag: flaglog.Info},
		{name: "Heap/TagColor", useHeap: true, color: flaglog.ColorTag, flag: flaglog.Info},
		{name: "Filtered", color: flaglog.ColorTag, flag: flaglog.Debug},
	}

	for _, tc := range testCases {
		b.Run(tc.name, func(b *testing.B) {
			config := flaglog.DefaultConfig("bench", flaglog.FlagsAll&^flaglog.Debug)
			config.Output = benchWriter{}
			config.ColorMode = tc.color
			config.UseHeap = tc.useHeap

			logger, err := NewAdapter(config, true)
			if err != nil {
				b.Fatalf("failed to create adapter: %v", err)
			}

			b.Cleanup(func() { _ = logger.Destroy() })

			b.ReportAllocs()
			b.ResetTimer()

			for i := range b.N {
				logger.Emitf(tc.flag, true, "request %d served in %dms", i, 12)
			}
		})
	}
}
