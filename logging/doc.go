// Package logging builds and owns a zerolog pipeline from the
// observability configuration.
//
// Local sinks (console, file) are written directly. External
// destinations (Loki, Seq, Elasticsearch) are declared in configuration
// for a log shipper or collector to consume; this package validates and
// tracks them in the status snapshot but never performs network I/O.
//
//	svc, err := logging.New(cfg)
//	defer svc.Close()
//
//	log := svc.Logger()
//	log.Info().Str("component", "worker").Msg("started")
package logging
