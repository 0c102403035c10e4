// Package images syncs the ordered image galleries of catalog products.
//
// Images are matched by label. Compared to assets the diff surface is
// small: only the URL and the alternative text can change in place. The
// package registers itself with the syncer as the "images" resource.
package images
