package skeleton

type skelOpts struct {
	marker any
}

type Option func(*skelOpts)

// Marker sets the value used to replace leaves. The default is "".
func Marker(m any) Option {
	return func(o *skelOpts) { o.marker = m }
}
