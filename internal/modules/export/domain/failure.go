package domain

const (
	failureHeadline = "❌ PDF indirilemedi."
	failureRemedy   = "Yazı tipi dosyasını ve çıktı klasörünü kontrol et."
)

// FailureLines is the user-facing block for a failed export.
func FailureLines(err error) []string {
	lines := []string{failureHeadline, failureRemedy}
	if err != nil {
		lines = append(lines, "Hata: "+err.Error())
	}
	return lines
}
