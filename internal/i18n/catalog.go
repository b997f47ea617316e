package i18n

var entries = []entry{
	{"_List_Papers_Not_connected_", "You are not connected.", "Vous n'êtes pas connecté."},
	{"_List_Papers_Something_wrong_happened_", "Something wrong happened while loading your papers.", "Une erreur est survenue lors du chargement de vos articles."},
	{"_Delete_paper_User_must_be_authentified_", "You must be logged in to delete a paper.", "Vous devez être connecté pour supprimer un article."},
	{"_Delete_paper_Authenticated_user_has_no_sufficient_rights_to_delete_the_paper_", "You are not allowed to delete this paper.", "Vous n'avez pas le droit de supprimer cet article."},
	{"_Delete_paper_Something_wrong_happened_", "Something wrong happened while deleting the paper.", "Une erreur est survenue lors de la suppression de l'article."},
	{"_New_paper_Some_parameters_are_missing_", "Some parameters are missing.", "Certains paramètres sont manquants."},
	{"_New_paper_Not_connected_", "You are not connected.", "Vous n'êtes pas connecté."},
	{"_New_paper_Something_wrong_happened_", "Something wrong happened while creating the paper.", "Une erreur est survenue lors de la création de l'article."},
	{"_Logout_Not_connected_", "You are not connected.", "Vous n'êtes pas connecté."},
	{"_Logout_Something_wrong_happened_", "Something wrong happened during logout.", "Une erreur est survenue lors de la déconnexion."},
	{"_Login_Some_parameters_are_missing_", "Please enter your username and password.", "Veuillez saisir votre identifiant et votre mot de passe."},
	{"_Login_Wrong_username_and_or_password_", "Wrong username and/or password.", "Identifiant et/ou mot de passe incorrect."},
	{"_Login_Something_wrong_happened_", "Something wrong happened during login.", "Une erreur est survenue lors de la connexion."},
	{"_Registration_Some_parameters_are_missing_", "Some parameters are missing.", "Certains paramètres sont manquants."},
	{"_Registration_User_with_the_same_username_already_exists_", "A user with the same username already exists.", "Un utilisateur avec le même identifiant existe déjà."},
	{"_Registration_Something_wrong_happened_", "Something wrong happened during registration.", "Une erreur est survenue lors de l'inscription."},
	{"_Registration_Success_Check_your_email_", "Your account was created. Check your email.", "Votre compte a été créé. Consultez vos courriels."},
	{"_Reset_Some_parameters_are_missing_", "Please enter your username.", "Veuillez saisir votre identifiant."},
	{"_Reset_User_not_found_", "User not found.", "Utilisateur introuvable."},
	{"_Reset_Something_wrong_happened_", "Something wrong happened.", "Une erreur est survenue."},
	{"_Reset_Check_your_email_", "A reset link was sent. Check your email.", "Un lien de réinitialisation a été envoyé. Consultez vos courriels."},
	{"_Reset_password_Some_parameters_are_missing_", "Some parameters are missing or the passwords differ.", "Certains paramètres sont manquants ou les mots de passe diffèrent."},
	{"_Reset_password_Not_authorized_to_reset_password_", "This reset link is not valid.", "Ce lien de réinitialisation n'est pas valide."},
	{"_Reset_password_Something_wrong_happened_", "Something wrong happened.", "Une erreur est survenue."},
	{"_Reset_password_Password_changed_", "Your password was changed.", "Votre mot de passe a été modifié."},
	{"_Profile_Not_connected_", "You are not connected.", "Vous n'êtes pas connecté."},
	{"_Profile_User_not_found_", "User not found.", "Utilisateur introuvable."},
	{"_Profile_Something_wrong_happened_", "Something wrong happened.", "Une erreur est survenue."},
	{"_Paper_Not_connected_", "You are not connected.", "Vous n'êtes pas connecté."},
	{"_Paper_Authenticated_user_has_no_sufficient_rights_", "You are not allowed to access this paper.", "Vous n'avez pas accès à cet article."},
	{"_Paper_Paper_not_found_", "Paper not found.", "Article introuvable."},
	{"_Paper_Something_wrong_happened_", "Something wrong happened.", "Une erreur est survenue."},
	{"_Edit_paper_Some_parameters_are_missing_", "Some parameters are missing.", "Certains paramètres sont manquants."},
	{"_Edit_paper_Not_connected_", "You are not connected.", "Vous n'êtes pas connecté."},
	{"_Edit_paper_Authenticated_user_has_no_sufficient_rights_", "You are not allowed to edit this paper.", "Vous n'avez pas le droit de modifier cet article."},
	{"_Edit_paper_Something_wrong_happened_", "Something wrong happened.", "Une erreur est survenue."},
	{"_Edit_paper_Saved_", "Paper saved.", "Article enregistré."},

	{"Login", "Login", "Connexion"},
	{"Logout", "Logout", "Déconnexion"},
	{"Register", "Register", "Inscription"},
	{"Reset password", "Reset password", "Réinitialiser le mot de passe"},
	{"Profile", "Profile", "Profil"},
	{"Papers", "Papers", "Articles"},
	{"New paper", "New paper", "Nouvel article"},
	{"Edit paper", "Edit paper", "Modifier l'article"},
	{"Paper", "Paper", "Article"},
	{"Page not found", "Page not found", "Page introuvable"},
	{"Username", "Username", "Identifiant"},
	{"Password", "Password", "Mot de passe"},
	{"First name", "First name", "Prénom"},
	{"Last name", "Last name", "Nom"},
	{"Email", "Email", "Courriel"},
	{"Affiliation", "Affiliation", "Affiliation"},
	{"New password", "New password", "Nouveau mot de passe"},
	{"Confirm password", "Confirm password", "Confirmer le mot de passe"},
	{"Date", "Date", "Date"},
	{"Role", "Role", "Rôle"},
	{"Title", "Title", "Titre"},
	{"Name", "Name", "Nom"},
	{"Filter", "Filter", "Filtrer"},
	{"List", "List", "Liste"},
	{"Grid", "Grid", "Grille"},
	{"Delete", "Delete", "Supprimer"},
	{"No paper", "No paper", "Aucun article"},
	{"Template", "Template", "Modèle"},
	{"Visibility", "Visibility", "Visibilité"},
	{"Private", "Private", "Privé"},
	{"Public", "Public", "Public"},
	{"Create", "Create", "Créer"},
	{"Save", "Save", "Enregistrer"},
	{"Page", "Page", "Page"},
	{"Not compiled yet", "Not compiled yet", "Pas encore compilé"},
	{"Authors", "Authors", "Auteurs"},
	{"Reviewers", "Reviewers", "Relecteurs"},
	{"All", "All", "Tous"},
	{"Today", "Today", "Aujourd'hui"},
	{"Yesterday", "Yesterday", "Hier"},
	{"This week", "This week", "Cette semaine"},
	{"Last week", "Last week", "La semaine dernière"},
	{"This month", "This month", "Ce mois-ci"},
	{"This year", "This year", "Cette année"},
	{"Author", "Author", "Auteur"},
	{"Reviewer", "Reviewer", "Relecteur"},
	{"author", "author", "auteur"},
	{"reviewer", "reviewer", "relecteur"},
}
