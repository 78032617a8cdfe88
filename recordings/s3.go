package recordings

import (
	"context"
	"os"
	"strings"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

func uploadToS3(
	ctx context.Context,
	callSID string,
	filePath string,
) (string, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(configmanager.ConfStore.RecordingS3Region),
	})
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to create the AWS session. Error: [%#v]", err)
		return "", err
	}

	f, err := os.Open(filePath)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Error while reading the file. Error: [%#v]", err)
		return "", err
	}
	defer f.Close()

	fileEle := strings.Split(filePath, "/")
	key := time.Now().Format("2006-01-02") + "/" + fileEle[len(fileEle)-1]

	uploader := s3manager.NewUploader(sess)
	result, err := uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(configmanager.ConfStore.RecordingS3Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String("audio/wav"),
	})
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to upload the file to S3. Error: [%#v]", err)
		return "", err
	}
	ymlogger.LogInfof(callSID, "Uploaded file to S3: [%s]", result.Location)
	return result.Location, nil
}
