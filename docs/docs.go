// Package docs publica el documento OpenAPI servido en /swagger/*.
// Se regenera desde las anotaciones de los handlers con `go generate ./cmd/api`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/animals": {
            "get": {
                "description": "Más recientes primero, paginado por offset.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Listar animales",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (desde 1)",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Page-animals_animalResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "Registra un animal. El nombre no es único; otros registros lo referencian por nombre.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Registrar animal",
                "parameters": [
                    {
                        "description": "Datos del animal",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.createAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Obtener animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del animal",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "put": {
                "description": "Campos ausentes no cambian. Renombrar no toca los registros que usan el nombre anterior.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Actualizar animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del animal",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.updateAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "No borra vacunaciones, registros de salud ni de crecimiento que lo nombran.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Eliminar animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del animal",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "patch": {
                "description": "Campos ausentes no cambian. Renombrar no toca los registros que usan el nombre anterior.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "animals"
                ],
                "summary": "Actualizar animal",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del animal",
                        "name": "animalID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/animals.updateAnimalRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/animals.animalResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/growth-records": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "growth"
                ],
                "summary": "Listar mediciones de crecimiento",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (desde 1)",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Page-growth_recordResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "multipart/form-data: animal_name, date, weight, height, notes y photo (jpeg/png/gif).",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "growth"
                ],
                "summary": "Registrar medición de crecimiento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Nombre del animal",
                        "name": "animal_name",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "date",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Peso",
                        "name": "weight",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "number",
                        "description": "Altura",
                        "name": "height",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Notas",
                        "name": "notes",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Foto",
                        "name": "photo",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/growth.recordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "animal not found (STRICT_ANIMAL_REFERENCES)",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/growth-records/{recordID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "growth"
                ],
                "summary": "Obtener medición",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/growth.recordResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "put": {
                "description": "Campos ausentes no cambian. Con photo se reemplaza la foto y la anterior se borra.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "growth"
                ],
                "summary": "Actualizar medición",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Nombre del animal",
                        "name": "animal_name",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "date",
                        "in": "formData"
                    },
                    {
                        "type": "number",
                        "description": "Peso",
                        "name": "weight",
                        "in": "formData"
                    },
                    {
                        "type": "number",
                        "description": "Altura",
                        "name": "height",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Notas",
                        "name": "notes",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Foto nueva",
                        "name": "photo",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/growth.recordResponse"
                        },
                        "headers": {
                            "X-Storage-Warning": {
                                "type": "string",
                                "description": "La foto anterior no pudo borrarse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "description": "Borra la foto (best effort) y después el registro.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "growth"
                ],
                "summary": "Eliminar medición",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        },
                        "headers": {
                            "X-Storage-Warning": {
                                "type": "string",
                                "description": "La foto no pudo borrarse"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "patch": {
                "description": "Campos ausentes no cambian. Con photo se reemplaza la foto y la anterior se borra.",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "growth"
                ],
                "summary": "Actualizar medición",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Nombre del animal",
                        "name": "animal_name",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "YYYY-MM-DD",
                        "name": "date",
                        "in": "formData"
                    },
                    {
                        "type": "number",
                        "description": "Peso",
                        "name": "weight",
                        "in": "formData"
                    },
                    {
                        "type": "number",
                        "description": "Altura",
                        "name": "height",
                        "in": "formData"
                    },
                    {
                        "type": "string",
                        "description": "Notas",
                        "name": "notes",
                        "in": "formData"
                    },
                    {
                        "type": "file",
                        "description": "Foto nueva",
                        "name": "photo",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/growth.recordResponse"
                        },
                        "headers": {
                            "X-Storage-Warning": {
                                "type": "string",
                                "description": "La foto anterior no pudo borrarse"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "413": {
                        "description": "Request Entity Too Large",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "system"
                ],
                "summary": "Liveness",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/health-records": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Listar registros de salud",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (desde 1)",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Page-health_recordResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Registrar evento de salud",
                "parameters": [
                    {
                        "description": "Registro de salud",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/health.createRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/health.recordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "animal not found (STRICT_ANIMAL_REFERENCES)",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/health-records/{recordID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Obtener registro de salud",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/health.recordResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Actualizar registro de salud",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/health.updateRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/health.recordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Eliminar registro de salud",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Actualizar registro de salud",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del registro",
                        "name": "recordID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/health.updateRecordRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/health.recordResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/medicines": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Listar medicamentos",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (desde 1)",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Page-medicines_medicineResponse"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Alta de medicamento",
                "parameters": [
                    {
                        "description": "Medicamento",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.createMedicineRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/medicines/{medicineID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Obtener medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Actualizar medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.updateMedicineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Eliminar medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "medicines"
                ],
                "summary": "Actualizar medicamento",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID del medicamento",
                        "name": "medicineID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/medicines.updateMedicineRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/medicines.medicineResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/vaccinations": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Listar vacunaciones",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Página (desde 1)",
                        "name": "page",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.Page-vaccinations_vaccinationResponse"
                        }
                    }
                }
            },
            "post": {
                "description": "El animal debe existir (por nombre) al momento de crear.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Programar vacunación",
                "parameters": [
                    {
                        "description": "Vacunación",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccinations.createVaccinationRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/vaccinations.vaccinationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        },
        "/vaccinations/{vaccinationID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Obtener vacunación",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccinations.vaccinationResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "put": {
                "description": "animal_name no se acepta: una vacunación no se reasigna.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Actualizar vacunación",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccinations.updateVaccinationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccinations.vaccinationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Eliminar vacunación",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            },
            "patch": {
                "description": "animal_name no se acepta: una vacunación no se reasigna.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "vaccinations"
                ],
                "summary": "Actualizar vacunación",
                "parameters": [
                    {
                        "type": "string",
                        "description": "ID de la vacunación",
                        "name": "vaccinationID",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Campos a cambiar",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/vaccinations.updateVaccinationRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/vaccinations.vaccinationResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/respond.MessageBody"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "animals.animalResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "animals.createAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                }
            }
        },
        "animals.updateAnimalRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "owner": {
                    "type": "string"
                },
                "species": {
                    "type": "string"
                }
            }
        },
        "growth.recordResponse": {
            "type": "object",
            "properties": {
                "animal_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "height": {
                    "type": "number"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "photo_path": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "weight": {
                    "type": "number"
                }
            }
        },
        "health.createRecordRequest": {
            "type": "object",
            "properties": {
                "animal_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "medicine_name": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "treatment": {
                    "type": "string"
                }
            }
        },
        "health.recordResponse": {
            "type": "object",
            "properties": {
                "animal_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "medicine_name": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "treatment": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "health.updateRecordRequest": {
            "type": "object",
            "properties": {
                "animal_name": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "diagnosis": {
                    "type": "string"
                },
                "medicine_name": {
                    "type": "string"
                },
                "symptoms": {
                    "type": "string"
                },
                "treatment": {
                    "type": "string"
                }
            }
        },
        "medicines.createMedicineRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                }
            }
        },
        "medicines.medicineResponse": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "medicines.updateMedicineRequest": {
            "type": "object",
            "properties": {
                "description": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "stock": {
                    "type": "integer"
                }
            }
        },
        "respond.MessageBody": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "respond.Page-animals_animalResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/animals.animalResponse"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "respond.Page-growth_recordResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/growth.recordResponse"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "respond.Page-health_recordResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/health.recordResponse"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "respond.Page-medicines_medicineResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/medicines.medicineResponse"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "respond.Page-vaccinations_vaccinationResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/vaccinations.vaccinationResponse"
                    }
                },
                "page": {
                    "type": "integer"
                },
                "page_size": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "vaccinations.Status": {
            "type": "string",
            "enum": [
                "Pending",
                "Completed"
            ],
            "x-enum-varnames": [
                "StatusPending",
                "StatusCompleted"
            ]
        },
        "vaccinations.createVaccinationRequest": {
            "type": "object",
            "properties": {
                "animal_name": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "scheduled_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "vaccine_name": {
                    "type": "string"
                }
            }
        },
        "vaccinations.updateVaccinationRequest": {
            "type": "object",
            "properties": {
                "notes": {
                    "type": "string"
                },
                "scheduled_date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "vaccine_name": {
                    "type": "string"
                }
            }
        },
        "vaccinations.vaccinationResponse": {
            "type": "object",
            "properties": {
                "animal_name": {
                    "type": "string"
                },
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "notes": {
                    "type": "string"
                },
                "scheduled_date": {
                    "type": "string"
                },
                "status": {
                    "$ref": "#/definitions/vaccinations.Status"
                },
                "updated_at": {
                    "type": "string"
                },
                "vaccine_name": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Care Records API",
	Description:      "Animales, vacunaciones, salud, crecimiento (con foto) e inventario de medicamentos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
