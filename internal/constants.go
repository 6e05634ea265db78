package internal

const (
	// ApplicationName is the non-capitalized name of the application (do not change this)
	ApplicationName = "vercmp"
)
