package build

// กำหนดค่าตอน build ด้วย -ldflags "-X go-facade/build.Version=... -X go-facade/build.Time=..."
var (
	Version = "local-dev"
	Time    = "n/a"
)
