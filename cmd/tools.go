package cmd

import (
	"context"
	"fmt"
	"io"

	"travel-functions/internal/usecase"
)

// ListBuckets prints every bucket name, one per line.
func ListBuckets(ctx context.Context, svc usecase.StorageService, out io.Writer) error {
	buckets, err := svc.ListBuckets(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Buckets in %s:\n", svc.Region())
	for _, b := range buckets {
		fmt.Fprintf(out, " - %s\n", b.Name)
	}
	return nil
}

// ReadCSV prints the first rows of a CSV object and its row count.
func ReadCSV(ctx context.Context, svc usecase.StorageService, bucket, key string, rows int, out io.Writer) error {
	t, err := svc.ReadTable(ctx, bucket, key)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, t.Head(rows).String())
	fmt.Fprintf(out, "\n[%d rows x %d columns]\n", t.Len(), len(t.Columns))
	return nil
}
