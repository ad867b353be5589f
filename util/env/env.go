package env

import (
	"os"
	"strconv"
	"time"
)

// อ่านค่าจาก environment variable ถ้าไม่มีจะได้ค่าว่าง
func Get(key string) string {
	return os.Getenv(key)
}

func GetDefault(key string, defaultValue string) string {
	v, ok := os.LookupEnv(key)
	if !ok || len(v) == 0 {
		return defaultValue
	}
	return v
}

// ถ้าแปลงเป็นตัวเลขไม่ได้ จะใช้ค่า default แทน
func GetIntDefault(key string, defaultValue int) int {
	v, ok := os.LookupEnv(key)
	if !ok || len(v) == 0 {
		return defaultValue
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue
	}
	return i
}

// รองรับรูปแบบของ time.ParseDuration เช่น 5s, 1m30s
func GetDurationDefault(key string, defaultValue time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || len(v) == 0 {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultValue
	}
	return d
}

// รองรับค่าแบบ strconv.ParseBool เช่น true, 1, false, 0
func GetBoolDefault(key string, defaultValue bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || len(v) == 0 {
		return defaultValue
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return defaultValue
	}
	return b
}
