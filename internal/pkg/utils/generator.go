package utils

import (
	"crypto/rand"
	"dental-clinic-service/internal/pkg/constvars"
	"fmt"
	"math/big"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

func GeneratePatientFileNumber(now time.Time) string {
	return fmt.Sprintf(constvars.PatientFileNumberFormat, now.Format("20060102"), randomReference(6))
}

func GenerateInvoiceNumber(now time.Time) string {
	return fmt.Sprintf(constvars.InvoiceNumberFormat, now.Format("200601"), randomReference(6))
}

// GenerateAttachmentObjectKey builds the storage key of a patient file.
func GenerateAttachmentObjectKey(patientID, fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("patients/%s/%s%s", patientID, uuid.NewString(), extension)
}

func randomReference(length int) string {
	max := big.NewInt(int64(len(referenceAlphabet)))
	reference := make([]byte, length)
	for i := range reference {
		num, err := rand.Int(rand.Reader, max)
		if err != nil {
			reference[i] = referenceAlphabet[i%len(referenceAlphabet)]
			continue
		}
		reference[i] = referenceAlphabet[num.Int64()]
	}
	return string(reference)
}
