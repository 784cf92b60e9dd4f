// Package health provides liveness and readiness probes.
//
// Readiness runs named checks concurrently under a shared timeout. The HTTP
// server registers one check per external dependency it needs to serve
// traffic: the mail relay (Sender.Ping) and the headless browser
// (Renderer.Ping).
//
//	checks := health.Checks{
//		"mailer":   health.FromPinger(mail),
//		"renderer": health.FromPinger(docs),
//	}
//	http.Handle("/health/ready", health.ReadinessHandler(checks))
//
// Responses are plain text ("OK" / "Service Unavailable") unless the client
// asks for JSON with ?format=json or an Accept header.
package health
