package recordings

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"net/url"
	"os"
	"strings"
	"time"

	"bitbucket.org/yellowmessenger/twilio-voice/configmanager"
	"bitbucket.org/yellowmessenger/twilio-voice/ymlogger"
	"github.com/Azure/azure-storage-blob-go/azblob"
)

func uploadToAzure(
	ctx context.Context,
	callSID string,
	filePath string,
) (string, error) {
	accountName := os.Getenv("AZURE_STORAGE_ACCOUNT")
	accountKey := os.Getenv("AZURE_STORAGE_ACCESS_KEY")
	if len(accountName) == 0 || len(accountKey) == 0 {
		ymlogger.LogError(callSID, "Either the AZURE_STORAGE_ACCOUNT or AZURE_STORAGE_ACCESS_KEY environment variable is not set")
		return "", errors.New("Environment variables are not set")
	}

	fileEle := strings.Split(filePath, "/")
	fileName := time.Now().Format("2006-01-02") + "/" + fileEle[len(fileEle)-1]

	u, err := url.Parse(
		fmt.Sprintf("https://%s.blob.core.windows.net/%s/%s", accountName, configmanager.ConfStore.RecordingContainerName, fileName))
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to parse the URL. Error: [%#v]", err)
		return "", err
	}
	// Create a default request pipeline using your storage account name and account key.
	credential, err := azblob.NewSharedKeyCredential(accountName, accountKey)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Invalid credentials. Error: [%#v]", err.Error())
		return "", err
	}

	blockBlobURL := azblob.NewBlockBlobURL(*u, azblob.NewPipeline(credential, azblob.PipelineOptions{}))
	// Read file contents with retries
	var dat []byte
	for i := 0; i < 3; i++ {
		dat, err = ioutil.ReadFile(filePath)
		if err != nil {
			ymlogger.LogErrorf(callSID, "Error while reading the file. Error: [%#v]", err)
			time.Sleep(1 * time.Second)
			continue
		}
		break
	}
	if err != nil {
		return "", err
	}

	o := azblob.UploadToBlockBlobOptions{
		BlobHTTPHeaders: azblob.BlobHTTPHeaders{
			ContentType: "audio/wav",
		},
	}
	_, err = azblob.UploadBufferToBlockBlob(ctx, dat, blockBlobURL, o)
	if err != nil {
		ymlogger.LogErrorf(callSID, "Failed to upload the file to blob storage. Error: [%#v]", err)
		return "", err
	}
	ymlogger.LogInfof(callSID, "Uploaded file to blob: [%s]", blockBlobURL.String())
	return blockBlobURL.String(), nil
}
