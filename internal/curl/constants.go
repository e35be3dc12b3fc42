package curl

const (
	cmdCurl    = "curl"
	cmdSudo    = "sudo"
	cmdEnv     = "env"
	cmdCommand = "command"
	cmdTime    = "time"
	cmdNoGlob  = "noglob"
)

var promptPrefixes = []string{"$", "%", ">", "!"}

const (
	headerAuthorization = "Authorization"
	headerUserAgent     = "User-Agent"
	headerReferer       = "Referer"
	headerCookie        = "Cookie"
)

const (
	schemeHTTP  = "http"
	schemeHTTPS = "https"

	bearerPrefix = "bearer "

	urlQuoteChars = "\"'`"
)
