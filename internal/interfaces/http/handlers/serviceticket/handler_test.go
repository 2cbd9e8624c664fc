package serviceticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mechanicdto "github.com/shopfloor-inc/shopfloor/internal/application/mechanic/dto"
	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/dto"
	"github.com/shopfloor-inc/shopfloor/internal/application/serviceticket/usecases"
	"github.com/shopfloor-inc/shopfloor/internal/interfaces/http/handlers/testutil"
	"github.com/shopfloor-inc/shopfloor/internal/shared/errors"
	"github.com/shopfloor-inc/shopfloor/internal/shared/utils"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateUC struct {
	cmd    usecases.CreateServiceTicketCommand
	called bool
	result *dto.ServiceTicketDTO
	err    error
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateServiceTicketCommand) (*dto.ServiceTicketDTO, error) {
	m.cmd = cmd
	m.called = true
	return m.result, m.err
}

type mockGetUC struct {
	result *dto.ServiceTicketDTO
	err    error
}

func (m *mockGetUC) Execute(_ context.Context, _ usecases.GetServiceTicketQuery) (*dto.ServiceTicketDTO, error) {
	return m.result, m.err
}

type mockListUC struct {
	result []*dto.ServiceTicketDTO
	err    error
}

func (m *mockListUC) Execute(_ context.Context) ([]*dto.ServiceTicketDTO, error) {
	return m.result, m.err
}

type mockUpdateUC struct {
	cmd    usecases.UpdateServiceTicketCommand
	called bool
	result *dto.ServiceTicketDTO
	err    error
}

func (m *mockUpdateUC) Execute(_ context.Context, cmd usecases.UpdateServiceTicketCommand) (*dto.ServiceTicketDTO, error) {
	m.cmd = cmd
	m.called = true
	return m.result, m.err
}

type mockDeleteUC struct {
	err error
}

func (m *mockDeleteUC) Execute(_ context.Context, _ usecases.DeleteServiceTicketCommand) error {
	return m.err
}

type mockAssignUC struct {
	cmd    usecases.AssignMechanicCommand
	result *dto.ServiceTicketDTO
	err    error
}

func (m *mockAssignUC) Execute(_ context.Context, cmd usecases.AssignMechanicCommand) (*dto.ServiceTicketDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockRemoveUC struct {
	cmd    usecases.RemoveMechanicCommand
	result *dto.ServiceTicketDTO
	err    error
}

func (m *mockRemoveUC) Execute(_ context.Context, cmd usecases.RemoveMechanicCommand) (*dto.ServiceTicketDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mocks struct {
	create *mockCreateUC
	get    *mockGetUC
	list   *mockListUC
	update *mockUpdateUC
	delete *mockDeleteUC
	assign *mockAssignUC
	remove *mockRemoveUC
}

func newTestHandler() (*Handler, *mocks) {
	m := &mocks{
		create: &mockCreateUC{},
		get:    &mockGetUC{},
		list:   &mockListUC{},
		update: &mockUpdateUC{},
		delete: &mockDeleteUC{},
		assign: &mockAssignUC{},
		remove: &mockRemoveUC{},
	}
	h := NewHandler(m.create, m.get, m.list, m.update, m.delete, m.assign, m.remove, testutil.NewMockLogger())
	return h, m
}

func ticketDTO(mechanics ...uint) *dto.ServiceTicketDTO {
	if mechanics == nil {
		mechanics = []uint{}
	}
	return &dto.ServiceTicketDTO{ID: 1, Description: "brake repair", Status: "open", Mechanics: mechanics}
}

// =====================================================================
// Tests
// =====================================================================

func TestHandler_CreateServiceTicket(t *testing.T) {
	t.Run("status omitted", func(t *testing.T) {
		h, m := newTestHandler()
		m.create.result = ticketDTO()
		c, w := testutil.NewTestContext(http.MethodPost, "/service-tickets/", map[string]any{"description": "brake repair"})

		h.CreateServiceTicket(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"id":1,"description":"brake repair","status":"open","mechanics":[]}`, w.Body.String())
		assert.Nil(t, m.create.cmd.Status)
	})

	t.Run("status sent", func(t *testing.T) {
		h, m := newTestHandler()
		m.create.result = ticketDTO()
		c, _ := testutil.NewTestContext(http.MethodPost, "/service-tickets/", map[string]any{"description": "brake repair", "status": "queued"})

		h.CreateServiceTicket(c)

		require.NotNil(t, m.create.cmd.Status)
		assert.Equal(t, "queued", *m.create.cmd.Status)
	})

	t.Run("mechanics cannot be set through the payload", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/service-tickets/", map[string]any{"description": "brake repair", "mechanics": []uint{1}})

		h.CreateServiceTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string][]string{"mechanics": {utils.MsgUnknownField}}, testutil.FieldErrors(w))
		assert.False(t, m.create.called)
	})

	t.Run("null status", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/service-tickets/", `{"description":"brake repair","status":null}`)

		h.CreateServiceTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string][]string{"status": {utils.MsgNull}}, testutil.FieldErrors(w))
		assert.False(t, m.create.called)
	})

	t.Run("description too long", func(t *testing.T) {
		h, _ := newTestHandler()
		long := make([]byte, 301)
		for i := range long {
			long[i] = 'a'
		}
		c, w := testutil.NewTestContext(http.MethodPost, "/service-tickets/", map[string]any{"description": string(long)})

		h.CreateServiceTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string][]string{"description": {"Longer than maximum length 300."}}, testutil.FieldErrors(w))
	})
}

func TestHandler_ListAndGetServiceTickets(t *testing.T) {
	h, m := newTestHandler()
	m.list.result = []*dto.ServiceTicketDTO{ticketDTO(2)}
	c, w := testutil.NewTestContext(http.MethodGet, "/service-tickets/", nil)

	h.ListServiceTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"description":"brake repair","status":"open","mechanics":[2]}]`, w.Body.String())

	m.get.err = errors.NewNotFoundError(dto.MsgServiceTicketNotFound)
	c, w = testutil.NewTestContext(http.MethodGet, "/service-tickets/9", nil)
	testutil.SetURLParam(c, "id", "9")

	h.GetServiceTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.MsgServiceTicketNotFound, testutil.ErrorMessage(w))
}

func TestHandler_UpdateServiceTicket(t *testing.T) {
	t.Run("description only keeps status", func(t *testing.T) {
		h, m := newTestHandler()
		m.update.result = ticketDTO()
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/1", map[string]any{"description": "brake repair"})
		testutil.SetURLParam(c, "id", "1")

		h.UpdateServiceTicket(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(1), m.update.cmd.TicketID)
		assert.Nil(t, m.update.cmd.Status)
	})

	t.Run("missing description", func(t *testing.T) {
		h, m := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/1", map[string]any{"status": "closed"})
		testutil.SetURLParam(c, "id", "1")

		h.UpdateServiceTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, map[string][]string{"description": {utils.MsgRequired}}, testutil.FieldErrors(w))
		assert.False(t, m.update.called)
	})

	t.Run("missing ticket with invalid payload", func(t *testing.T) {
		h, m := newTestHandler()
		m.get.err = errors.NewNotFoundError(dto.MsgServiceTicketNotFound)
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/99", map[string]any{"status": "x"})
		testutil.SetURLParam(c, "id", "99")

		h.UpdateServiceTicket(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.MsgServiceTicketNotFound, testutil.ErrorMessage(w))
		assert.False(t, m.update.called)
	})
}

func TestHandler_DeleteServiceTicket(t *testing.T) {
	h, _ := newTestHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/service-tickets/1", nil)
	testutil.SetURLParam(c, "id", "1")

	h.DeleteServiceTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Service ticket 1 is deleted successfully."}`, w.Body.String())
}

func TestHandler_AssignAndRemoveMechanic(t *testing.T) {
	t.Run("assign", func(t *testing.T) {
		h, m := newTestHandler()
		m.assign.result = ticketDTO(1)
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/1/assign-mechanic/1", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "mechanic_id", "1")

		h.AssignMechanic(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.AssignMechanicCommand{TicketID: 1, MechanicID: 1}, m.assign.cmd)
		assert.JSONEq(t, `{"id":1,"description":"brake repair","status":"open","mechanics":[1]}`, w.Body.String())
	})

	t.Run("assign unknown mechanic", func(t *testing.T) {
		h, m := newTestHandler()
		m.assign.err = errors.NewNotFoundError(mechanicdto.MsgMechanicNotFound)
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/1/assign-mechanic/x", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "mechanic_id", "x")

		h.AssignMechanic(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, uint(0), m.assign.cmd.MechanicID)
		assert.Equal(t, mechanicdto.MsgMechanicNotFound, testutil.ErrorMessage(w))
	})

	t.Run("remove", func(t *testing.T) {
		h, m := newTestHandler()
		m.remove.result = ticketDTO()
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/1/remove-mechanic/1", nil)
		testutil.SetURLParam(c, "id", "1")
		testutil.SetURLParam(c, "mechanic_id", "1")

		h.RemoveMechanic(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecases.RemoveMechanicCommand{TicketID: 1, MechanicID: 1}, m.remove.cmd)
		assert.JSONEq(t, `{"id":1,"description":"brake repair","status":"open","mechanics":[]}`, w.Body.String())
	})

	t.Run("remove from invalid ticket id", func(t *testing.T) {
		h, _ := newTestHandler()
		c, w := testutil.NewTestContext(http.MethodPut, "/service-tickets/abc/remove-mechanic/1", nil)
		testutil.SetURLParam(c, "id", "abc")
		testutil.SetURLParam(c, "mechanic_id", "1")

		h.RemoveMechanic(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, dto.MsgServiceTicketNotFound, testutil.ErrorMessage(w))
	})
}
