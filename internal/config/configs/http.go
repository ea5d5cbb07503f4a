package configs

// HTTP defines configuration for the HTTP server. The Port specifies
// which port the server will bind to. FrontendOrigin is the single origin
// allowed by the CORS middleware; the browser frontend is served from a
// different host in every deployment.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8000.
	Port uint16 `env:"PORT" envDefault:"8000"`
	// FrontendOrigin is the origin allowed to call the API from a browser.
	FrontendOrigin string `env:"FRONTEND_ORIGIN" envDefault:"http://localhost:3000"`
}
