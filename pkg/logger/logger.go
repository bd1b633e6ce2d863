package logger

import (
	"log"
	"os"
)

var (
	// InfoLogger umumiy ma'lumot loglari uchun
	InfoLogger *log.Logger
	// ErrorLogger xatolik loglari uchun
	ErrorLogger *log.Logger
)

// Init loggerlarni ishga tushirish
func Init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}
