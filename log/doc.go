// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports JSON ([FormatJSON]) and logfmt ([FormatLogfmt]) output and the
// four standard [slog.Level] severities, parsed from strings via [GetLevel]
// and [GetFormat]. Use [CreateHandler] to build a handler directly, or use
// [Config] for CLI flag integration via [github.com/spf13/pflag] and shell
// completion support via [github.com/spf13/cobra].
//
// Typical usage creates a [Config], registers flags, then builds a handler
// at startup:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
//
// A [Publisher] fans out log output to multiple subscribers, which is
// useful for displaying CLI progress and logs side by side:
//
//	pub := log.NewPublisher()
//	handler := log.CreateHandler(pub, slog.LevelInfo, log.FormatJSON)
//	logger := slog.New(handler)
//
//	sub := pub.Subscribe()
//	go func() {
//	    for entry := range sub.C() {
//	        // Deliver entry to the progress display.
//	    }
//	}()
package log
