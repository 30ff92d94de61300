package services

import (
	"context"
	"strings"
	"testing"

	"guaranihost/dto"
	apperrors "guaranihost/errors"
	"guaranihost/models"
	"guaranihost/validator"
)

func propertyForm() dto.PropertyFormRequest {
	return dto.PropertyFormRequest{
		PropertyForm: validator.PropertyForm{
			Title:         "  Casa frente al lago ",
			Description:   strings.Repeat("d", 60),
			Address:       "Ruta 2 km 48",
			City:          "San Bernardino",
			PricePerNight: "350000",
			MaxGuests:     "6",
		},
	}
}

func newTestPropertyService(api *fakeAPI, up *fakeUploader) (*PropertyService, *StagingStore) {
	staging := NewStagingStore(0)
	return NewPropertyService(PropertyServiceOptions{
		API:      api,
		Staging:  staging,
		Uploader: up,
	}), staging
}

func stage(t *testing.T, s *StagingStore, names ...string) {
	t.Helper()
	err := s.With(testSession.ID, func(buf *models.ImageBuffer) error {
		for _, n := range names {
			if err := buf.Add(models.StagedFile{Name: n, ContentType: "image/jpeg", Size: 3, Data: []byte("jpg")}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCreatePropertyUploadsInBufferOrder(t *testing.T) {
	api := newFakeAPI()
	up := &fakeUploader{}
	svc, staging := newTestPropertyService(api, up)
	stage(t, staging, "a.jpg", "b.jpg", "c.jpg")
	staging.With(testSession.ID, func(buf *models.ImageBuffer) error {
		buf.MoveToFirst(2)
		return nil
	})

	saved, err := svc.Create(context.Background(), testSession, propertyForm())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"https://cdn/c.jpg", "https://cdn/a.jpg", "https://cdn/b.jpg"}
	if strings.Join(saved.ImageURLs, ",") != strings.Join(want, ",") {
		t.Fatalf("urls = %v", saved.ImageURLs)
	}
	sent := api.created[0]
	if sent.Title != "Casa frente al lago" || sent.PricePerNight != 350000 || sent.Guests != 6 {
		t.Fatalf("payload = %+v", sent)
	}
	if len(staging.Snapshot(testSession.ID)) != 0 {
		t.Fatal("staging should be cleared after submit")
	}
}

func TestCreatePropertyInvalidFormMakesNoCalls(t *testing.T) {
	api := newFakeAPI()
	up := &fakeUploader{}
	svc, _ := newTestPropertyService(api, up)

	form := propertyForm()
	form.PricePerNight = "0"
	_, err := svc.Create(context.Background(), testSession, form)
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeValidation {
		t.Fatalf("err = %v", err)
	}
	if appErr.Fields["pricePerNight"] == "" || appErr.Fields["images"] == "" {
		t.Fatalf("fields = %v", appErr.Fields)
	}
	if len(up.files) != 0 || api.count("CreateProperty") != 0 {
		t.Fatal("no upload or network call expected")
	}
}

func TestUpdatePropertyKeepsExistingImages(t *testing.T) {
	api := newFakeAPI()
	svc, staging := newTestPropertyService(api, &fakeUploader{})
	stage(t, staging, "new.jpg")

	form := propertyForm()
	form.ExistingImages = []string{"https://cdn/old.jpg"}
	saved, err := svc.Update(context.Background(), testSession, "p1", form)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(saved.ImageURLs, ",") != "https://cdn/old.jpg,https://cdn/new.jpg" {
		t.Fatalf("urls = %v", saved.ImageURLs)
	}
}

func TestUpdatePropertyWithoutNewImages(t *testing.T) {
	api := newFakeAPI()
	up := &fakeUploader{}
	svc, _ := newTestPropertyService(api, up)

	form := propertyForm()
	form.ExistingImages = []string{"https://cdn/old.jpg"}
	if _, err := svc.Update(context.Background(), testSession, "p1", form); err != nil {
		t.Fatal(err)
	}
	form.ExistingImages = nil
	if _, err := svc.Update(context.Background(), testSession, "p1", form); err == nil {
		t.Fatal("edit without any image should fail")
	}
}

func TestDeletePropertyRequiresSession(t *testing.T) {
	api := newFakeAPI()
	svc, _ := newTestPropertyService(api, &fakeUploader{})
	if err := svc.Delete(context.Background(), models.Session{}, "p1"); err == nil {
		t.Fatal("expected error")
	}
	if err := svc.Delete(context.Background(), testSession, "p1"); err != nil {
		t.Fatal(err)
	}
	if api.count("DeleteProperty") != 1 {
		t.Fatalf("calls = %v", api.calls)
	}
}
